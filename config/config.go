package config

import (
	"errors"
	"fmt"
	"math"
)

// SimulationConfig contains tick timing and the policy values the character
// core applies every tick. Speeds are in world units per second, vertical
// velocity is positive upwards.
type SimulationConfig struct {
	TickRate  int     `yaml:"tick_rate"`
	UnitScale float64 `yaml:"unit_scale"` // pixels per world unit

	// Body
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	SensorDepth  float64 `yaml:"sensor_depth"` // pixels probed by ground/wall sensors

	// Locomotion
	FallThreshold float64 `yaml:"fall_threshold"` // vertical velocity below which Rising becomes Falling
	MoveDeadzone  float64 `yaml:"move_deadzone"`
	FlapFuelCost  float64 `yaml:"flap_fuel_cost"`

	// Energy
	MaxEnergy int `yaml:"max_energy"`

	// Minimum durations applied before use (seconds)
	MeleeLifetimeFloor      float64 `yaml:"melee_lifetime_floor"`
	ProjectileLifetimeFloor float64 `yaml:"projectile_lifetime_floor"`
	DashDurationFloor       float64 `yaml:"dash_duration_floor"`

	// Acknowledgment fallbacks (seconds, 0 disables)
	AttackAckTimeout float64 `yaml:"attack_ack_timeout"`
	MorphAckTimeout  float64 `yaml:"morph_ack_timeout"`

	// Presentation cue lengths (seconds)
	AttackCueDuration float64 `yaml:"attack_cue_duration"`
	MorphCueDuration  float64 `yaml:"morph_cue_duration"`

	// Dimensions (pixels)
	AgentWidth       float64 `yaml:"agent_width"`
	AgentHeight      float64 `yaml:"agent_height"`
	EnemyWidth       float64 `yaml:"enemy_width"`
	EnemyHeight      float64 `yaml:"enemy_height"`
	HitboxWidth      float64 `yaml:"hitbox_width"`
	HitboxHeight     float64 `yaml:"hitbox_height"`
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
	PickupSize       float64 `yaml:"pickup_size"`

	// Spawn points relative to the agent's front edge (pixels)
	MeleeSpawnOffset      float64 `yaml:"melee_spawn_offset"`
	ProjectileSpawnOffset float64 `yaml:"projectile_spawn_offset"`
	ProjectileSpawnRise   float64 `yaml:"projectile_spawn_rise"`

	// Target categories an agent's attacks can affect
	AgentHitMask LayerMask `yaml:"agent_hit_mask"`

	// Collision grid
	CellSize int `yaml:"cell_size"`
}

// Sim is the global simulation configuration.
var Sim SimulationConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Sim = DefaultSimulation()
}

// DefaultSimulation returns the built-in tuning.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		TickRate:  60,
		UnitScale: 16,

		Gravity:      25,
		MaxFallSpeed: 20,
		SensorDepth:  1,

		FallThreshold: -0.2,
		MoveDeadzone:  0.01,
		FlapFuelCost:  0.1,

		MaxEnergy: 100,

		MeleeLifetimeFloor:      0.05,
		ProjectileLifetimeFloor: 0.1,
		DashDurationFloor:       0.05,

		AttackAckTimeout: 3,
		MorphAckTimeout:  5,

		AttackCueDuration: 0.3,
		MorphCueDuration:  1.2,

		AgentWidth:       14,
		AgentHeight:      22,
		EnemyWidth:       16,
		EnemyHeight:      22,
		HitboxWidth:      18,
		HitboxHeight:     16,
		ProjectileWidth:  8,
		ProjectileHeight: 8,
		PickupSize:       10,

		MeleeSpawnOffset:      1.6, // 0.1 world units
		ProjectileSpawnOffset: 2,
		ProjectileSpawnRise:   6,

		AgentHitMask: LayerMask(LayerEnemy | LayerDestructible),

		CellSize: 16,
	}
}

// ErrInvalidTuning is returned for simulation values the systems cannot run
// with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate checks the ranges the systems rely on.
func (c SimulationConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidTuning, c.TickRate)
	}
	if c.MaxEnergy < 0 {
		return fmt.Errorf("%w: max_energy must not be negative, got %d", ErrInvalidTuning, c.MaxEnergy)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidTuning, c.CellSize)
	}
	if c.FallThreshold > 0 || math.IsNaN(c.FallThreshold) {
		return fmt.Errorf("%w: fall_threshold must not be positive, got %v", ErrInvalidTuning, c.FallThreshold)
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"unit_scale", c.UnitScale},
		{"melee_lifetime_floor", c.MeleeLifetimeFloor},
		{"projectile_lifetime_floor", c.ProjectileLifetimeFloor},
		{"dash_duration_floor", c.DashDurationFloor},
		{"agent_width", c.AgentWidth},
		{"agent_height", c.AgentHeight},
		{"enemy_width", c.EnemyWidth},
		{"enemy_height", c.EnemyHeight},
		{"hitbox_width", c.HitboxWidth},
		{"hitbox_height", c.HitboxHeight},
		{"projectile_width", c.ProjectileWidth},
		{"projectile_height", c.ProjectileHeight},
		{"pickup_size", c.PickupSize},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"max_fall_speed", c.MaxFallSpeed},
		{"sensor_depth", c.SensorDepth},
		{"move_deadzone", c.MoveDeadzone},
		{"flap_fuel_cost", c.FlapFuelCost},
		{"attack_ack_timeout", c.AttackAckTimeout},
		{"morph_ack_timeout", c.MorphAckTimeout},
		{"attack_cue_duration", c.AttackCueDuration},
		{"morph_cue_duration", c.MorphCueDuration},
	}
	for _, f := range nonNegative {
		if !(f.v >= 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, f.name, f.v)
		}
	}
	return nil
}

// TickDelta is the fixed step in seconds.
func (c SimulationConfig) TickDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
