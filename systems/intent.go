package systems

import (
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// QueueMove sets agent's movement axis. It holds until changed.
func QueueMove(agent *donburi.Entry, axis float64) {
	if intent := intentOf(agent); intent != nil {
		intent.SetMove(axis)
	}
}

// QueueAction records an edge-triggered request for the next tick.
func QueueAction(agent *donburi.Entry, action cfg.ActionID) {
	if intent := intentOf(agent); intent != nil {
		intent.Press(action)
	}
}

// QueueSwap requests a manual swap to roster index n.
func QueueSwap(agent *donburi.Entry, n int) {
	if intent := intentOf(agent); intent != nil {
		intent.PressSwap(n)
	}
}

// QueueEvolution requests a forward evolution along option n.
func QueueEvolution(agent *donburi.Entry, option int) {
	if intent := intentOf(agent); intent != nil {
		intent.PressMorphForward(option)
	}
}

func intentOf(agent *donburi.Entry) *components.IntentData {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Intent) {
		return nil
	}
	return components.Intent.Get(agent)
}
