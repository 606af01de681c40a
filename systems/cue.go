package systems

import (
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EnableCues makes the world play a timed presentation cue for every attack
// and transformation, acknowledging each one when its tween finishes. Worlds
// without cues must acknowledge through OnAttackAnimationEnd and
// OnTransitionAnimationEnd themselves.
func EnableCues(w donburi.World) {
	components.StateChangedEvent.Subscribe(w, startCue)
}

func startCue(w donburi.World, event components.StateChanged) {
	agent := event.Agent
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Cue) {
		return
	}
	cue := components.Cue.Get(agent)

	switch event.Signal {
	case components.SignalAttackStarted:
		cue.Attack = gween.New(0, 1, float32(cfg.Sim.AttackCueDuration), ease.OutQuad)
		cue.AttackValue = 0
	case components.SignalTransitionStarted:
		cue.Morph = gween.New(0, 1, float32(cfg.Sim.MorphCueDuration), ease.InOutSine)
		cue.MorphValue = 0
	}
}

// UpdateCues advances running cues and acknowledges the finished ones.
func UpdateCues(w donburi.World) {
	clock := clockOf(w)
	if clock == nil {
		return
	}
	dt := float32(clock.Delta)

	var attacksDone, morphsDone []*donburi.Entry
	components.Cue.Each(w, func(e *donburi.Entry) {
		cue := components.Cue.Get(e)
		if cue.Attack != nil {
			var finished bool
			cue.AttackValue, finished = cue.Attack.Update(dt)
			if finished {
				cue.Attack = nil
				attacksDone = append(attacksDone, e)
			}
		}
		if cue.Morph != nil {
			var finished bool
			cue.MorphValue, finished = cue.Morph.Update(dt)
			if finished {
				cue.Morph = nil
				morphsDone = append(morphsDone, e)
			}
		}
	})

	for _, e := range attacksDone {
		OnAttackAnimationEnd(w, e)
	}
	for _, e := range morphsDone {
		OnTransitionAnimationEnd(w, e)
	}
}
