package config

// Phase is the exclusive movement state of an agent. Attacking is tracked
// separately because it may overlap any phase.
type Phase int

const (
	PhaseGrounded Phase = iota
	PhaseRising
	PhaseFalling
	PhaseDashing
)

var phaseNames = map[Phase]string{
	PhaseGrounded: "grounded",
	PhaseRising:   "rising",
	PhaseFalling:  "falling",
	PhaseDashing:  "dashing",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Airborne reports whether p is one of the airborne sub-phases.
func (p Phase) Airborne() bool {
	return p == PhaseRising || p == PhaseFalling
}
