package config

// ActionID represents an edge-triggered request queued between ticks.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionDash
	ActionMelee
	ActionRanged
	ActionMorphForward
	ActionMorphBackward
	ActionSwap
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionJump:          "jump",
	ActionDash:          "dash",
	ActionMelee:         "melee",
	ActionRanged:        "ranged",
	ActionMorphForward:  "morph_forward",
	ActionMorphBackward: "morph_backward",
	ActionSwap:          "swap",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
