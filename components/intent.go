package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// IntentData collects one tick's worth of requests. Move is a level and
// persists until overwritten; actions are edges cleared after the tick
// consumes them.
type IntentData struct {
	Move        float64
	Pressed     [config.ActionCount]bool
	SwapIndex   int
	MorphOption int
}

var Intent = donburi.NewComponentType[IntentData]()

// SetMove records the movement axis clamped to [-1, 1].
func (i *IntentData) SetMove(axis float64) {
	switch {
	case axis > 1:
		axis = 1
	case axis < -1:
		axis = -1
	case axis != axis: // NaN
		axis = 0
	}
	i.Move = axis
}

// Press queues an edge-triggered action.
func (i *IntentData) Press(action config.ActionID) {
	if action <= config.ActionNone || action >= config.ActionCount {
		return
	}
	i.Pressed[action] = true
}

// PressSwap queues a manual swap to roster index n.
func (i *IntentData) PressSwap(n int) {
	i.SwapIndex = n
	i.Pressed[config.ActionSwap] = true
}

// PressMorphForward queues a forward evolution along option n.
func (i *IntentData) PressMorphForward(option int) {
	i.MorphOption = option
	i.Pressed[config.ActionMorphForward] = true
}

// Has reports whether action was queued this tick.
func (i *IntentData) Has(action config.ActionID) bool {
	if action <= config.ActionNone || action >= config.ActionCount {
		return false
	}
	return i.Pressed[action]
}

// Clear drops every queued edge.
func (i *IntentData) Clear() {
	i.Pressed = [config.ActionCount]bool{}
	i.SwapIndex = 0
	i.MorphOption = 0
}
