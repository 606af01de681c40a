package config

// Element is the elemental type carried by attacks and defenders.
type Element int

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementWater
	ElementLight
	ElementDark
)

var elementNames = map[Element]string{
	ElementNone:  "None",
	ElementFire:  "Fire",
	ElementIce:   "Ice",
	ElementWater: "Water",
	ElementLight: "Light",
	ElementDark:  "Dark",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Layer is a target category that attacks can be masked against.
type Layer uint32

const (
	LayerPlayer Layer = 1 << iota
	LayerEnemy
	LayerDestructible
)

// LayerMask is a set of layers.
type LayerMask uint32

// Has reports whether the mask contains layer l.
func (m LayerMask) Has(l Layer) bool {
	return uint32(m)&uint32(l) != 0
}
