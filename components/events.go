package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Signal names a discrete state change for presentation consumers.
type Signal int

const (
	SignalEnteredAirborne Signal = iota
	SignalStartedFalling
	SignalLanded
	SignalAttackStarted
	SignalAttackEnded
	SignalDashStarted
	SignalDashEnded
	SignalTransitionStarted
	SignalTransitionCommitted
	SignalCharacterChanged
	SignalFlap
)

var signalNames = map[Signal]string{
	SignalEnteredAirborne:     "entered-airborne",
	SignalStartedFalling:      "started-falling",
	SignalLanded:              "landed",
	SignalAttackStarted:       "started-attack",
	SignalAttackEnded:         "ended-attack",
	SignalDashStarted:         "started-dash",
	SignalDashEnded:           "ended-dash",
	SignalTransitionStarted:   "transition-started",
	SignalTransitionCommitted: "transition-committed",
	SignalCharacterChanged:    "character-changed",
	SignalFlap:                "flap",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

type StateChanged struct {
	Agent  *donburi.Entry
	Signal Signal
	Attack AttackKind // set for SignalAttackStarted
}

type EnergyChanged struct {
	Agent   *donburi.Entry
	Current int
	Max     int
}

type TargetDestroyed struct {
	Target  donburi.Entity
	Element config.Element
	Enemy   *config.EnemyDefinition
}

type TargetHit struct {
	Target  *donburi.Entry
	Attack  AttackKind
	Applied int
}

var (
	StateChangedEvent    = events.NewEventType[StateChanged]()
	EnergyChangedEvent   = events.NewEventType[EnergyChanged]()
	TargetDestroyedEvent = events.NewEventType[TargetDestroyed]()
	TargetHitEvent       = events.NewEventType[TargetHit]()
)
