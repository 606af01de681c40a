package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// RosterData is the append-only list of archetypes an agent has unlocked.
type RosterData struct {
	Unlocked []*config.CharacterDefinition
	Index    int // index of the active archetype, -1 when it is not in the roster
}

var Roster = donburi.NewComponentType[RosterData]()

// IndexOf returns the roster position of def or -1.
func (r *RosterData) IndexOf(def *config.CharacterDefinition) int {
	for i, d := range r.Unlocked {
		if d == def {
			return i
		}
	}
	return -1
}
