package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

type MorphKind int

const (
	MorphNone MorphKind = iota
	MorphForward
	MorphBackward
)

// MorphData holds a transition between its start signal and the
// acknowledgment that commits it.
type MorphData struct {
	Kind      MorphKind
	Pending   *config.CharacterDefinition
	StartedAt float64
}

var Morph = donburi.NewComponentType[MorphData]()

// InProgress reports whether a transition is waiting for acknowledgment.
func (m *MorphData) InProgress() bool {
	return m.Pending != nil
}
