package components

import "github.com/yohamta/donburi"

// EnergyData is the per-archetype energy ledger of an agent. Entries are
// keyed by definition id and created lazily at zero.
type EnergyData struct {
	Max     int
	Entries map[string]int
}

var Energy = donburi.NewComponentType[EnergyData]()

// Amount returns the entry for id, creating it at zero on first use.
func (e *EnergyData) Amount(id string) int {
	if e.Entries == nil {
		e.Entries = map[string]int{}
	}
	v, ok := e.Entries[id]
	if !ok {
		e.Entries[id] = 0
	}
	return v
}
