package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Definition *config.EnemyDefinition
	Direction  float64

	// Patrol bounds in pixels; equal bounds mean the enemy stands still.
	PatrolLeft  float64
	PatrolRight float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
