package systems

import (
	"log"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// SwapToIndex switches agent to the unlocked archetype at roster index n.
// Out of range indexes, the active index and pending transitions are
// ignored.
func SwapToIndex(w donburi.World, agent *donburi.Entry, n int) bool {
	if !canMorph(agent) {
		return false
	}
	roster := components.Roster.Get(agent)
	if n < 0 || n >= len(roster.Unlocked) || n == roster.Index {
		return false
	}
	ApplyDefinition(w, agent, roster.Unlocked[n])
	return true
}

// RequestEvolution starts a forward transition along option. The active
// archetype's energy must be full. The definition only changes once
// OnTransitionAnimationEnd is called.
func RequestEvolution(w donburi.World, agent *donburi.Entry, option int) bool {
	if !canMorph(agent) {
		return false
	}
	def := components.Agent.Get(agent).Definition
	if option < 0 || option >= len(def.DigivolveOptions) || !committable(def.DigivolveOptions[option]) {
		return false
	}
	if !IsEnergyFull(agent) {
		return false
	}
	beginTransition(w, agent, components.MorphForward, def.DigivolveOptions[option])
	return true
}

// RequestDevolution starts a backward transition. It has no energy cost.
func RequestDevolution(w donburi.World, agent *donburi.Entry) bool {
	if !canMorph(agent) {
		return false
	}
	def := components.Agent.Get(agent).Definition
	if !committable(def.DedigivolveTo) {
		return false
	}
	beginTransition(w, agent, components.MorphBackward, def.DedigivolveTo)
	return true
}

// committable reports whether def could become the active archetype.
func committable(def *cfg.CharacterDefinition) bool {
	if def == nil {
		return false
	}
	if err := def.Validate(); err != nil {
		log.Printf("[morph] refusing transition to %s: %v", def.ID, err)
		return false
	}
	return true
}

func beginTransition(w donburi.World, agent *donburi.Entry, kind components.MorphKind, to *cfg.CharacterDefinition) {
	components.Morph.SetValue(agent, components.MorphData{
		Kind:      kind,
		Pending:   to,
		StartedAt: Now(w),
	})
	emitState(w, agent, components.SignalTransitionStarted)
}

// OnTransitionAnimationEnd acknowledges the transformation cue and commits
// the pending transition. A forward evolution spends the previous
// archetype's full energy; if that fails, or the pending definition is
// invalid, the transition is dropped and nothing is spent.
func OnTransitionAnimationEnd(w donburi.World, agent *donburi.Entry) {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Morph) {
		return
	}
	morph := components.Morph.Get(agent)
	if !morph.InProgress() {
		return
	}
	pending, kind := morph.Pending, morph.Kind
	*morph = components.MorphData{}

	if err := pending.Validate(); err != nil {
		log.Printf("[morph] %s: transition dropped: %v", CurrentDefinition(agent).ID, err)
		return
	}
	if kind == components.MorphForward && !TrySpendEnergy(w, agent, MaxEnergy(agent)) {
		log.Printf("[morph] %s: energy drained before commit, evolution dropped", CurrentDefinition(agent).ID)
		return
	}

	ApplyDefinition(w, agent, pending)
	emitState(w, agent, components.SignalTransitionCommitted)
}

// UpdateMorphs commits transitions whose acknowledgment never arrived.
func UpdateMorphs(w donburi.World) {
	timeout := cfg.Sim.MorphAckTimeout
	if timeout <= 0 {
		return
	}
	now, dt := clockTime(w)

	var stale []*donburi.Entry
	components.Morph.Each(w, func(e *donburi.Entry) {
		morph := components.Morph.Get(e)
		if morph.InProgress() && due(now, morph.StartedAt+timeout, dt) {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		log.Printf("[morph] transition not acknowledged after %.1fs, committing", timeout)
		OnTransitionAnimationEnd(w, e)
	}
}

// UnlockCharacter appends def to agent's roster. Duplicates are refused.
func UnlockCharacter(agent *donburi.Entry, def *cfg.CharacterDefinition) bool {
	if def == nil || agent == nil || !agent.Valid() || !agent.HasComponent(components.Roster) {
		return false
	}
	roster := components.Roster.Get(agent)
	if roster.IndexOf(def) >= 0 {
		log.Printf("[morph] %s already unlocked", def.ID)
		return false
	}
	roster.Unlocked = append(roster.Unlocked, def)
	return true
}

// ApplyDefinition makes def the active archetype of agent. Fuel refills,
// both attacks become ready and a dash in progress is cancelled, even when
// def is already active.
func ApplyDefinition(w donburi.World, agent *donburi.Entry, def *cfg.CharacterDefinition) {
	if err := def.Validate(); err != nil {
		log.Printf("[morph] cannot apply definition: %v", err)
		return
	}
	data := components.Agent.Get(agent)
	data.Definition = def
	data.Fuel = def.MaxFlyTime
	data.ResetCooldowns()
	if data.Dashing() {
		physics := components.Physics.Get(agent)
		data.Phase = settlePhase(data, physics.SpeedY)
		data.DashEndsAt = 0
	}

	roster := components.Roster.Get(agent)
	roster.Index = roster.IndexOf(def)

	emitState(w, agent, components.SignalCharacterChanged)
	emitEnergy(w, agent)
}

func canMorph(agent *donburi.Entry) bool {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Morph) {
		return false
	}
	if components.Agent.Get(agent).Definition == nil {
		return false
	}
	return !components.Morph.Get(agent).InProgress()
}
