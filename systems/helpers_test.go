package systems

import (
	"testing"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/yohamta/donburi"
)

// step is a 1/16 s tick; multiples of it are exact in binary.
const step = 1.0 / 16.0

// floorTop is the y of the arena floor surface.
const floorTop = 100.0

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 640, 360, 16, 16)
	factory.CreateClock(w)
	factory.CreateWall(w, 0, floorTop, 640, 16)
	return w
}

// withSim overrides simulation settings for the duration of the test.
func withSim(t *testing.T, mod func(s *cfg.SimulationConfig)) {
	t.Helper()
	saved := cfg.Sim
	t.Cleanup(func() { cfg.Sim = saved })
	mod(&cfg.Sim)
}

// standingAt spawns def with its feet on the floor.
func standingAt(w donburi.World, x float64, def *cfg.CharacterDefinition, roster ...*cfg.CharacterDefinition) *donburi.Entry {
	return factory.CreateAgent(w, x, floorTop-cfg.Sim.AgentHeight, def, roster...)
}

// stepAgents runs the tick up to the velocity command, before the body
// moves, so tests can observe the command itself.
func stepAgents(w donburi.World, dt float64) {
	UpdateClock(w, dt)
	UpdateSensors(w)
	UpdateAgents(w)
	UpdateMorphs(w)
	ProcessSignals(w)
}

func walkerDef() *cfg.CharacterDefinition {
	return &cfg.CharacterDefinition{
		ID:        "walker",
		WalkSpeed: 5,
		JumpForce: 10,
		Element:   cfg.ElementNone,
		Melee: cfg.MeleeAttack{
			Prefab:   "claw",
			Cooldown: 0.5,
			Damage:   1,
			Lifetime: 0.5,
		},
		Ranged: cfg.RangedAttack{
			Prefab:    "spark",
			Cooldown:  0.5,
			Speed:     10,
			Damage:    1,
			HoverTime: 0.25,
			Lifetime:  2,
		},
	}
}

func dasherDef() *cfg.CharacterDefinition {
	def := walkerDef()
	def.ID = "dasher"
	def.CanDash = true
	def.DashSpeed = 14
	def.DashDuration = 0.25
	def.DashCooldown = 1
	def.DashStopsAtWall = true
	return def
}

func flyerDef(limited bool) *cfg.CharacterDefinition {
	def := walkerDef()
	def.ID = "flyer"
	def.CanFly = true
	def.LimitFlight = limited
	def.MaxFlyTime = 1
	def.FlyRefillRate = 0.5
	def.FlyJumpForce = 6
	return def
}

// morphLine returns a base archetype that evolves into the second and
// devolves back from it.
func morphLine() (*cfg.CharacterDefinition, *cfg.CharacterDefinition) {
	base := flyerDef(true)
	base.ID = "base"
	evolved := dasherDef()
	evolved.ID = "evolved"
	base.DigivolveOptions = []*cfg.CharacterDefinition{evolved}
	evolved.DedigivolveTo = base
	return base, evolved
}

type recorder struct {
	states    []components.StateChanged
	energy    []components.EnergyChanged
	hits      []components.TargetHit
	destroyed []components.TargetDestroyed
}

func record(w donburi.World) *recorder {
	r := &recorder{}
	components.StateChangedEvent.Subscribe(w, func(_ donburi.World, e components.StateChanged) {
		r.states = append(r.states, e)
	})
	components.EnergyChangedEvent.Subscribe(w, func(_ donburi.World, e components.EnergyChanged) {
		r.energy = append(r.energy, e)
	})
	components.TargetHitEvent.Subscribe(w, func(_ donburi.World, e components.TargetHit) {
		r.hits = append(r.hits, e)
	})
	components.TargetDestroyedEvent.Subscribe(w, func(_ donburi.World, e components.TargetDestroyed) {
		r.destroyed = append(r.destroyed, e)
	})
	return r
}

func (r *recorder) saw(s components.Signal) bool {
	for _, e := range r.states {
		if e.Signal == s {
			return true
		}
	}
	return false
}

func agentOf(e *donburi.Entry) *components.AgentData {
	return components.Agent.Get(e)
}

func physicsOf(e *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(e)
}
