package systems

import (
	"testing"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolutionNeedsFullEnergy(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	base, _ := morphLine()
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent)-1)

	QueueEvolution(agent, 0)
	stepAgents(w, step)

	assert.False(t, components.Morph.Get(agent).InProgress())
	assert.Same(t, base, CurrentDefinition(agent))
	assert.False(t, rec.saw(components.SignalTransitionStarted))
}

func TestEvolutionTwoPhaseCommit(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	base, evolved := morphLine()
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent))
	require.True(t, IsEnergyFull(agent))

	QueueEvolution(agent, 0)
	stepAgents(w, step)

	morph := components.Morph.Get(agent)
	require.True(t, morph.InProgress())
	assert.Same(t, evolved, morph.Pending)
	assert.True(t, rec.saw(components.SignalTransitionStarted))

	for i := 0; i < 16; i++ {
		Tick(w, step)
	}
	assert.Same(t, base, CurrentDefinition(agent), "definition changes only on acknowledgment")
	assert.Equal(t, MaxEnergy(agent), Energy(agent))

	OnTransitionAnimationEnd(w, agent)
	ProcessSignals(w)

	assert.Same(t, evolved, CurrentDefinition(agent))
	assert.False(t, morph.InProgress())
	assert.Equal(t, 0, components.Energy.Get(agent).Entries[base.ID])
	assert.Equal(t, 0, Energy(agent))
	assert.True(t, rec.saw(components.SignalTransitionCommitted))
	assert.True(t, rec.saw(components.SignalCharacterChanged))
}

func TestEvolutionRejectsUnknownOption(t *testing.T) {
	w := newTestWorld(t)
	base, _ := morphLine()
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent))

	assert.False(t, RequestEvolution(w, agent, 1))
	assert.False(t, RequestEvolution(w, agent, -1))
	assert.False(t, components.Morph.Get(agent).InProgress())
}

func TestEvolutionDroppedWhenEnergyDrainsBeforeCommit(t *testing.T) {
	w := newTestWorld(t)
	base, _ := morphLine()
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent))
	require.True(t, RequestEvolution(w, agent, 0))

	require.True(t, TrySpendEnergy(w, agent, 1))
	OnTransitionAnimationEnd(w, agent)

	assert.Same(t, base, CurrentDefinition(agent))
	assert.Equal(t, MaxEnergy(agent)-1, Energy(agent))
	assert.False(t, components.Morph.Get(agent).InProgress())
}

func TestEvolutionRefusesInvalidTarget(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	base, _ := morphLine()
	base.DigivolveOptions = []*cfg.CharacterDefinition{{ID: "bad", WalkSpeed: -1}}
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent))

	QueueEvolution(agent, 0)
	stepAgents(w, step)

	assert.False(t, components.Morph.Get(agent).InProgress())
	assert.False(t, rec.saw(components.SignalTransitionStarted))
	assert.Same(t, base, CurrentDefinition(agent))
	assert.Equal(t, MaxEnergy(agent), Energy(agent))
}

func TestInvalidPendingDefinitionKeepsEnergy(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	base, evolved := morphLine()
	agent := standingAt(w, 100, base)
	AddEnergy(w, agent, MaxEnergy(agent))
	require.True(t, RequestEvolution(w, agent, 0))

	// The target is edited into an invalid state while the cue plays.
	evolved.WalkSpeed = -1
	OnTransitionAnimationEnd(w, agent)
	ProcessSignals(w)

	assert.Same(t, base, CurrentDefinition(agent))
	assert.Equal(t, MaxEnergy(agent), Energy(agent), "a dropped evolution spends nothing")
	assert.False(t, components.Morph.Get(agent).InProgress())
	assert.False(t, rec.saw(components.SignalTransitionCommitted))
}

func TestDevolutionRefusesInvalidTarget(t *testing.T) {
	w := newTestWorld(t)
	_, evolved := morphLine()
	evolved.DedigivolveTo = &cfg.CharacterDefinition{ID: "bad", JumpForce: -3}
	agent := standingAt(w, 100, evolved)

	assert.False(t, RequestDevolution(w, agent))
	assert.False(t, components.Morph.Get(agent).InProgress())
}

func TestDevolutionHasNoEnergyGate(t *testing.T) {
	w := newTestWorld(t)
	base, evolved := morphLine()
	agent := standingAt(w, 100, evolved, base)
	AddEnergy(w, agent, 7)

	QueueAction(agent, cfg.ActionMorphBackward)
	stepAgents(w, step)
	require.True(t, components.Morph.Get(agent).InProgress())

	OnTransitionAnimationEnd(w, agent)

	assert.Same(t, base, CurrentDefinition(agent))
	assert.Equal(t, 7, components.Energy.Get(agent).Entries[evolved.ID], "backward transitions cost nothing")
}

func TestTransitionIsNotReentrant(t *testing.T) {
	w := newTestWorld(t)
	base, evolved := morphLine()
	agent := standingAt(w, 100, evolved, base)
	require.True(t, RequestDevolution(w, agent))
	pending := components.Morph.Get(agent).Pending

	assert.False(t, RequestDevolution(w, agent))
	assert.False(t, SwapToIndex(w, agent, 0))
	assert.Same(t, pending, components.Morph.Get(agent).Pending)
	assert.Same(t, evolved, CurrentDefinition(agent))
}

func TestTransitionAcknowledgmentFallback(t *testing.T) {
	withSim(t, func(s *cfg.SimulationConfig) { s.MorphAckTimeout = 0.25 })
	w := newTestWorld(t)
	base, evolved := morphLine()
	agent := standingAt(w, 100, evolved, base)

	QueueAction(agent, cfg.ActionMorphBackward)
	Tick(w, step)
	for i := 0; i < 3; i++ {
		Tick(w, step)
		require.Same(t, evolved, CurrentDefinition(agent))
	}
	Tick(w, step)
	assert.Same(t, base, CurrentDefinition(agent))
}

func TestAcknowledgmentWithoutTransitionIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	base, _ := morphLine()
	agent := standingAt(w, 100, base)

	OnTransitionAnimationEnd(w, agent)
	ProcessSignals(w)

	assert.Same(t, base, CurrentDefinition(agent))
	assert.Empty(t, rec.states)
}

func TestSwapToIndex(t *testing.T) {
	w := newTestWorld(t)
	dasher := dasherDef()
	flyer := flyerDef(true)
	agent := standingAt(w, 100, dasher, dasher, flyer)
	roster := components.Roster.Get(agent)
	require.Equal(t, 0, roster.Index)

	assert.False(t, SwapToIndex(w, agent, 0), "already active")
	assert.False(t, SwapToIndex(w, agent, 2))
	assert.False(t, SwapToIndex(w, agent, -1))

	QueueSwap(agent, 1)
	stepAgents(w, step)
	assert.Same(t, flyer, CurrentDefinition(agent))
	assert.Equal(t, 1, roster.Index)
}

func TestApplyDefinitionResetsTransientState(t *testing.T) {
	w := newTestWorld(t)
	dasher := dasherDef()
	flyer := flyerDef(true)
	agent := standingAt(w, 100, dasher, dasher, flyer)
	state := agentOf(agent)

	QueueAction(agent, cfg.ActionDash)
	stepAgents(w, step)
	require.True(t, state.Dashing())
	QueueAction(agent, cfg.ActionMelee)
	QueueAction(agent, cfg.ActionRanged)
	stepAgents(w, step)
	require.True(t, state.Attacking)

	QueueSwap(agent, 1)
	stepAgents(w, step)

	assert.False(t, state.Dashing())
	assert.Equal(t, cfg.PhaseGrounded, state.Phase)
	assert.Equal(t, flyer.MaxFlyTime, state.Fuel)
	assert.Equal(t, -999.0, state.LastMeleeAt)
	assert.Equal(t, -999.0, state.LastRangedAt)

	// Attacks are available right away.
	QueueAction(agent, cfg.ActionMelee)
	stepAgents(w, step)
	assert.Equal(t, Now(w), state.LastMeleeAt)
}

func TestReapplyingSameDefinitionRefillsFuel(t *testing.T) {
	w := newTestWorld(t)
	flyer := flyerDef(true)
	agent := factory.CreateAgent(w, 100, 20, flyer)
	agentOf(agent).Fuel = 0.2

	ApplyDefinition(w, agent, flyer)

	assert.Equal(t, 1.0, agentOf(agent).Fuel)
}

func TestApplyDefinitionRejectsInvalid(t *testing.T) {
	w := newTestWorld(t)
	def := walkerDef()
	agent := standingAt(w, 100, def)
	bad := walkerDef()
	bad.WalkSpeed = -1

	ApplyDefinition(w, agent, bad)
	ApplyDefinition(w, agent, nil)

	assert.Same(t, def, CurrentDefinition(agent))
}

func TestUnlockCharacter(t *testing.T) {
	w := newTestWorld(t)
	def := walkerDef()
	other := flyerDef(true)
	agent := standingAt(w, 100, def)

	assert.True(t, UnlockCharacter(agent, other))
	assert.False(t, UnlockCharacter(agent, other))
	assert.False(t, UnlockCharacter(agent, def))
	assert.False(t, UnlockCharacter(agent, nil))

	roster := components.Roster.Get(agent)
	assert.Equal(t, []*cfg.CharacterDefinition{def, other}, roster.Unlocked)
	assert.Same(t, def, CurrentDefinition(agent), "unlocking never swaps")
}
