package systems

import (
	"math"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// airPhase picks the airborne sub-phase for a vertical velocity.
func airPhase(vy float64) cfg.Phase {
	if vy < cfg.Sim.FallThreshold {
		return cfg.PhaseFalling
	}
	return cfg.PhaseRising
}

// settlePhase re-derives the phase from sensors once a dash is over.
func settlePhase(agent *components.AgentData, vy float64) cfg.Phase {
	if agent.Grounded && vy <= 0 {
		return cfg.PhaseGrounded
	}
	return airPhase(vy)
}

// expireDash ends a dash whose duration has fully elapsed.
func expireDash(w donburi.World, e *donburi.Entry, agent *components.AgentData, vy, now, dt float64) {
	if !agent.Dashing() || !due(now, agent.DashEndsAt, dt) {
		return
	}
	agent.Phase = settlePhase(agent, vy)
	emitState(w, e, components.SignalDashEnded)
}

// updateAirState applies the sensor and velocity driven transitions between
// grounded and the airborne sub-phases. Dashing holds its phase.
func updateAirState(w donburi.World, e *donburi.Entry, agent *components.AgentData, vy float64) {
	switch agent.Phase {
	case cfg.PhaseGrounded:
		if !agent.Grounded {
			agent.Phase = airPhase(vy)
			emitState(w, e, components.SignalEnteredAirborne)
			if agent.Phase == cfg.PhaseFalling {
				emitState(w, e, components.SignalStartedFalling)
			}
		}
	case cfg.PhaseRising:
		if agent.Grounded && vy <= 0 {
			agent.Phase = cfg.PhaseGrounded
			emitState(w, e, components.SignalLanded)
		} else if vy < cfg.Sim.FallThreshold {
			agent.Phase = cfg.PhaseFalling
			emitState(w, e, components.SignalStartedFalling)
		}
	case cfg.PhaseFalling:
		if agent.Grounded {
			agent.Phase = cfg.PhaseGrounded
			emitState(w, e, components.SignalLanded)
		}
	}
}

// regenerateFuel refills flight fuel while standing on ground.
func regenerateFuel(agent *components.AgentData, dt float64) {
	def := agent.Definition
	if !agent.Grounded || dt <= 0 {
		return
	}
	agent.Fuel = math.Min(def.MaxFlyTime, agent.Fuel+def.MaxFlyTime*def.FlyRefillRate*dt)
}

// jump handles a jump request: a ground jump when standing, a flap when in
// the air. It returns the new vertical velocity.
func jump(w donburi.World, e *donburi.Entry, agent *components.AgentData, vy float64) float64 {
	def := agent.Definition

	if agent.Grounded && agent.Phase != cfg.PhaseRising {
		if !agent.Dashing() {
			agent.Phase = cfg.PhaseRising
		}
		emitState(w, e, components.SignalEnteredAirborne)
		return def.JumpForce
	}

	if !tryFlap(agent) {
		return vy
	}
	if !agent.Dashing() && agent.Phase != cfg.PhaseRising {
		agent.Phase = cfg.PhaseRising
	}
	emitState(w, e, components.SignalFlap)
	return def.FlapForce()
}

// tryFlap spends one fuel quantum for a mid-air jump. Unlimited flyers never
// spend fuel.
func tryFlap(agent *components.AgentData) bool {
	def := agent.Definition
	if !def.CanFly {
		return false
	}
	if !def.LimitFlight {
		return true
	}
	if agent.Fuel <= 0 {
		return false
	}
	agent.Fuel = math.Max(0, agent.Fuel-cfg.Sim.FlapFuelCost)
	return true
}

// tryDash starts a dash in the facing direction if every gate passes.
func tryDash(w donburi.World, e *donburi.Entry, agent *components.AgentData, now, dt float64) bool {
	def := agent.Definition
	switch {
	case !def.CanDash,
		agent.Dashing(),
		agent.Attacking,
		!due(now, agent.DashReadyAt, dt),
		def.DashStopsAtWall && agent.TouchingWall:
		return false
	}

	agent.Phase = cfg.PhaseDashing
	agent.DashDirection = agent.Facing
	agent.DashEndsAt = now + def.EffectiveDashDuration()
	agent.DashReadyAt = now + def.DashCooldown
	emitState(w, e, components.SignalDashStarted)
	return true
}

// horizontalVelocity composes the horizontal velocity command in priority
// order: walk, attack suppression, airborne wall push, dash override.
func horizontalVelocity(agent *components.AgentData, move float64) float64 {
	def := agent.Definition

	vx := move * def.WalkSpeed
	if agent.Attacking {
		vx = 0
	}
	if !agent.Grounded && agent.TouchingWall && pushingForward(agent.Facing, move) {
		vx = 0
	}
	if agent.Dashing() {
		vx = def.DashSpeed * agent.DashDirection
	}
	return vx
}

func pushingForward(facing, move float64) bool {
	if math.Abs(move) <= cfg.Sim.MoveDeadzone {
		return false
	}
	return math.Signbit(move) == math.Signbit(facing)
}

// updateFacing turns the agent toward its movement input and reports
// whether it turned. Facing is locked during attacks and dashes.
func updateFacing(agent *components.AgentData, move float64) bool {
	if agent.Attacking || agent.Dashing() || math.Abs(move) <= cfg.Sim.MoveDeadzone {
		return false
	}
	facing := cfg.DirectionLeft
	if move > 0 {
		facing = cfg.DirectionRight
	}
	if facing == agent.Facing {
		return false
	}
	agent.Facing = facing
	return true
}
