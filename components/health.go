package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// HealthData is the damageable side of a target.
type HealthData struct {
	Current int
	Max     int
	Element config.Element
	Layer   config.Layer

	// Destroyed is set when an applied hit drops Current to zero or below.
	// The entity is removed at the end of the tick.
	Destroyed bool
}

var Health = donburi.NewComponentType[HealthData]()
