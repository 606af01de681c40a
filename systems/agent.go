package systems

import (
	"log"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
)

// UpdateAgents runs the locomotion state machine of every enabled agent for
// one tick and clears the intents it consumed.
func UpdateAgents(w donburi.World) {
	clock := clockOf(w)
	if clock == nil {
		return
	}
	tags.Agent.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Disabled) {
			return
		}
		updateAgent(w, e, clock.Now, clock.Delta)
	})
}

func updateAgent(w donburi.World, e *donburi.Entry, now, dt float64) {
	agent := components.Agent.Get(e)
	intent := components.Intent.Get(e)
	physics := components.Physics.Get(e)
	defer intent.Clear()

	if agent.Definition == nil {
		return
	}

	vel := physics.Velocity()

	// Timers and sensors first, so requests see this tick's state.
	expireDash(w, e, agent, vel.Y, now, dt)
	updateAirState(w, e, agent, vel.Y)
	expireAttack(w, e, agent, now, dt)
	regenerateFuel(agent, dt)

	// Identity changes come before anything that reads the definition.
	if intent.Has(cfg.ActionSwap) {
		SwapToIndex(w, e, intent.SwapIndex)
	}
	if intent.Has(cfg.ActionMorphForward) {
		RequestEvolution(w, e, intent.MorphOption)
	}
	if intent.Has(cfg.ActionMorphBackward) {
		RequestDevolution(w, e)
	}

	// Turn before anything that acts on the facing side.
	if updateFacing(agent, intent.Move) {
		probeWall(e, agent)
	}

	if intent.Has(cfg.ActionMelee) {
		RequestMelee(w, e)
	}
	if intent.Has(cfg.ActionRanged) {
		RequestRanged(w, e)
	}
	if intent.Has(cfg.ActionJump) {
		vel.Y = jump(w, e, agent, vel.Y)
	}
	if intent.Has(cfg.ActionDash) {
		tryDash(w, e, agent, now, dt)
	}

	vel.X = horizontalVelocity(agent, intent.Move)

	physics.SetVelocity(vel)
}

// expireAttack clears an attack whose end acknowledgment never arrived.
func expireAttack(w donburi.World, e *donburi.Entry, agent *components.AgentData, now, dt float64) {
	timeout := cfg.Sim.AttackAckTimeout
	if !agent.Attacking || timeout <= 0 || !due(now, agent.AttackStartedAt+timeout, dt) {
		return
	}
	log.Printf("[attack] %s: end of attack not acknowledged after %.1fs, clearing", agent.Definition.ID, timeout)
	OnAttackAnimationEnd(w, e)
}

// OnAttackAnimationEnd acknowledges that the attack presentation finished
// and clears the attacking flag.
func OnAttackAnimationEnd(w donburi.World, agent *donburi.Entry) {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Agent) {
		return
	}
	data := components.Agent.Get(agent)
	if !data.Attacking {
		return
	}
	data.Attacking = false
	emitState(w, agent, components.SignalAttackEnded)
}

// CurrentDefinition returns the active archetype of agent.
func CurrentDefinition(agent *donburi.Entry) *cfg.CharacterDefinition {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Agent) {
		return nil
	}
	return components.Agent.Get(agent).Definition
}

// Tick advances the whole simulation by dt seconds.
func Tick(w donburi.World, dt float64) {
	UpdateClock(w, dt)
	for _, system := range Pipeline {
		system(w)
	}
}

// Pipeline is the per-tick system order after the clock.
var Pipeline = []func(donburi.World){
	UpdateSensors,
	UpdateAgents,
	UpdateMorphs,
	UpdateBodies,
	UpdateAttacks,
	UpdatePickups,
	UpdateEnemies,
	RemoveDestroyedTargets,
	UpdateCues,
	ProcessSignals,
}
