package systems

import (
	"github.com/automoto/digimorph/components"
	"github.com/yohamta/donburi"
)

func emitState(w donburi.World, agent *donburi.Entry, signal components.Signal) {
	components.StateChangedEvent.Publish(w, components.StateChanged{
		Agent:  agent,
		Signal: signal,
	})
}

func emitAttackStarted(w donburi.World, agent *donburi.Entry, kind components.AttackKind) {
	components.StateChangedEvent.Publish(w, components.StateChanged{
		Agent:  agent,
		Signal: components.SignalAttackStarted,
		Attack: kind,
	})
}

// ProcessSignals delivers every signal queued during the tick to its
// subscribers. It runs last so consumers observe the settled state.
func ProcessSignals(w donburi.World) {
	components.StateChangedEvent.ProcessEvents(w)
	components.EnergyChangedEvent.ProcessEvents(w)
	components.TargetHitEvent.ProcessEvents(w)
	components.TargetDestroyedEvent.ProcessEvents(w)
}
