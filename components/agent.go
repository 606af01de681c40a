package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// AgentData is the mutable state of one controllable character. Only the
// tick systems write to it.
type AgentData struct {
	Definition *config.CharacterDefinition
	Facing     float64 // config.DirectionLeft or config.DirectionRight

	Phase config.Phase

	// Sensor results refreshed at the top of each tick.
	Grounded     bool
	TouchingWall bool // wall on the facing side

	Fuel float64

	DashEndsAt    float64
	DashReadyAt   float64
	DashDirection float64

	LastMeleeAt  float64
	LastRangedAt float64

	// Attacking overlaps any phase and is cleared by the end-of-attack
	// acknowledgment.
	Attacking       bool
	AttackStartedAt float64
}

var Agent = donburi.NewComponentType[AgentData]()

// neverAttacked makes every cooldown ready at time zero.
const neverAttacked = -999.0

// ResetCooldowns marks both attacks as ready.
func (a *AgentData) ResetCooldowns() {
	a.LastMeleeAt = neverAttacked
	a.LastRangedAt = neverAttacked
}

// Dashing reports whether a dash is in progress.
func (a *AgentData) Dashing() bool {
	return a.Phase == config.PhaseDashing
}
