package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingDefinition = errors.New("missing character definition")
	ErrInvalidDefinition = errors.New("invalid character definition")
)

// RangedAttack is the projectile block of a character definition.
type RangedAttack struct {
	Prefab    string // empty means the character has no ranged attack
	Cooldown  float64
	Speed     float64
	Damage    int
	HoverTime float64
	Lifetime  float64
}

// EffectiveLifetime returns Lifetime clamped to the projectile floor.
func (r RangedAttack) EffectiveLifetime() float64 {
	return math.Max(Sim.ProjectileLifetimeFloor, r.Lifetime)
}

// EffectiveHoverTime returns HoverTime clamped to zero.
func (r RangedAttack) EffectiveHoverTime() float64 {
	return math.Max(0, r.HoverTime)
}

// MeleeAttack is the hitbox block of a character definition.
type MeleeAttack struct {
	Prefab   string // empty means the character has no melee attack
	Cooldown float64
	Damage   int
	Lifetime float64
}

// EffectiveLifetime returns Lifetime clamped to the melee floor.
func (m MeleeAttack) EffectiveLifetime() float64 {
	return math.Max(Sim.MeleeLifetimeFloor, m.Lifetime)
}

// CharacterDefinition is the immutable stat block of a playable archetype.
// Agents share definitions by pointer and never mutate them.
type CharacterDefinition struct {
	ID          string
	DisplayName string

	// Movement
	WalkSpeed float64
	JumpForce float64

	// Flight
	CanFly        bool
	LimitFlight   bool
	MaxFlyTime    float64
	FlyRefillRate float64 // fraction of MaxFlyTime regained per grounded second
	FlyJumpForce  float64 // 0 falls back to JumpForce

	// Dash
	CanDash         bool
	DashSpeed       float64
	DashDuration    float64
	DashCooldown    float64
	DashStopsAtWall bool

	Element Element

	Ranged RangedAttack
	Melee  MeleeAttack

	// Morph graph
	DigivolveOptions []*CharacterDefinition
	DedigivolveTo    *CharacterDefinition
}

// EffectiveDashDuration returns DashDuration clamped to the dash floor.
func (d *CharacterDefinition) EffectiveDashDuration() float64 {
	return math.Max(Sim.DashDurationFloor, d.DashDuration)
}

// FlapForce is the vertical velocity applied by a mid-air jump.
func (d *CharacterDefinition) FlapForce() float64 {
	if d.FlyJumpForce > 0 {
		return d.FlyJumpForce
	}
	return d.JumpForce
}

// Validate checks that every numeric field is non-negative.
func (d *CharacterDefinition) Validate() error {
	if d == nil {
		return ErrMissingDefinition
	}
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}

	fields := map[string]float64{
		"walkSpeed":      d.WalkSpeed,
		"jumpForce":      d.JumpForce,
		"maxFlyTime":     d.MaxFlyTime,
		"flyRefillRate":  d.FlyRefillRate,
		"flyJumpForce":   d.FlyJumpForce,
		"dashSpeed":      d.DashSpeed,
		"dashDuration":   d.DashDuration,
		"dashCooldown":   d.DashCooldown,
		"rangedCooldown": d.Ranged.Cooldown,
		"rangedSpeed":    d.Ranged.Speed,
		"rangedDamage":   float64(d.Ranged.Damage),
		"rangedHover":    d.Ranged.HoverTime,
		"rangedLifetime": d.Ranged.Lifetime,
		"meleeCooldown":  d.Melee.Cooldown,
		"meleeDamage":    float64(d.Melee.Damage),
		"meleeLifetime":  d.Melee.Lifetime,
	}
	for name, v := range fields {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s %s is %v", ErrInvalidDefinition, d.ID, name, v)
		}
	}
	return nil
}

// Characters is the catalog of playable archetypes keyed by id.
var Characters map[string]*CharacterDefinition

func init() {
	agumon := &CharacterDefinition{
		ID:              "agumon",
		DisplayName:     "Agumon",
		WalkSpeed:       5,
		JumpForce:       10,
		CanDash:         true,
		DashSpeed:       14,
		DashDuration:    0.2,
		DashCooldown:    0.6,
		DashStopsAtWall: true,
		Element:         ElementFire,
		Ranged: RangedAttack{
			Prefab:    "pepper_breath",
			Cooldown:  0.5,
			Speed:     10,
			Damage:    1,
			HoverTime: 0.25,
			Lifetime:  3,
		},
		Melee: MeleeAttack{
			Prefab:   "claw",
			Cooldown: 0.4,
			Damage:   1,
			Lifetime: 0.2,
		},
	}
	greymon := &CharacterDefinition{
		ID:              "greymon",
		DisplayName:     "Greymon",
		WalkSpeed:       4,
		JumpForce:       11,
		CanDash:         true,
		DashSpeed:       16,
		DashDuration:    0.25,
		DashCooldown:    0.8,
		DashStopsAtWall: true,
		Element:         ElementFire,
		Ranged: RangedAttack{
			Prefab:    "nova_blast",
			Cooldown:  0.8,
			Speed:     12,
			Damage:    3,
			HoverTime: 0.5,
			Lifetime:  3,
		},
		Melee: MeleeAttack{
			Prefab:   "great_horns",
			Cooldown: 0.5,
			Damage:   2,
			Lifetime: 0.3,
		},
	}
	gabumon := &CharacterDefinition{
		ID:          "gabumon",
		DisplayName: "Gabumon",
		WalkSpeed:   5.5,
		JumpForce:   9.5,
		Element:     ElementIce,
		Ranged: RangedAttack{
			Prefab:    "blue_blaster",
			Cooldown:  0.5,
			Speed:     11,
			Damage:    1,
			HoverTime: 0.2,
			Lifetime:  2.5,
		},
		Melee: MeleeAttack{
			Prefab:   "horn_strike",
			Cooldown: 0.35,
			Damage:   1,
			Lifetime: 0.2,
		},
	}
	garurumon := &CharacterDefinition{
		ID:           "garurumon",
		DisplayName:  "Garurumon",
		WalkSpeed:    7,
		JumpForce:    10.5,
		CanDash:      true,
		DashSpeed:    18,
		DashDuration: 0.3,
		DashCooldown: 0.5,
		Element:      ElementIce,
		Ranged: RangedAttack{
			Prefab:    "howling_blaster",
			Cooldown:  0.7,
			Speed:     13,
			Damage:    2,
			HoverTime: 0.3,
			Lifetime:  3,
		},
		Melee: MeleeAttack{
			Prefab:   "fox_fang",
			Cooldown: 0.3,
			Damage:   2,
			Lifetime: 0.25,
		},
	}
	patamon := &CharacterDefinition{
		ID:            "patamon",
		DisplayName:   "Patamon",
		WalkSpeed:     4,
		JumpForce:     8,
		CanFly:        true,
		LimitFlight:   true,
		MaxFlyTime:    1,
		FlyRefillRate: 0.5,
		FlyJumpForce:  6,
		Element:       ElementLight,
		Ranged: RangedAttack{
			Prefab:    "air_shot",
			Cooldown:  0.6,
			Speed:     9,
			Damage:    1,
			HoverTime: 0.4,
			Lifetime:  2,
		},
		Melee: MeleeAttack{
			Prefab:   "boom_bubble",
			Cooldown: 0.4,
			Damage:   1,
			Lifetime: 0.15,
		},
	}
	angemon := &CharacterDefinition{
		ID:            "angemon",
		DisplayName:   "Angemon",
		WalkSpeed:     5,
		JumpForce:     10,
		CanFly:        true,
		FlyJumpForce:  7,
		MaxFlyTime:    2,
		FlyRefillRate: 0.5,
		CanDash:       true,
		DashSpeed:     15,
		DashDuration:  0.2,
		DashCooldown:  0.7,
		Element:       ElementLight,
		Ranged: RangedAttack{
			Prefab:    "heaven_knuckle",
			Cooldown:  0.7,
			Speed:     12,
			Damage:    3,
			HoverTime: 0.3,
			Lifetime:  3,
		},
		Melee: MeleeAttack{
			Prefab:   "angel_rod",
			Cooldown: 0.45,
			Damage:   2,
			Lifetime: 0.3,
		},
	}

	agumon.DigivolveOptions = []*CharacterDefinition{greymon}
	greymon.DedigivolveTo = agumon
	gabumon.DigivolveOptions = []*CharacterDefinition{garurumon}
	garurumon.DedigivolveTo = gabumon
	patamon.DigivolveOptions = []*CharacterDefinition{angemon}
	angemon.DedigivolveTo = patamon

	Characters = map[string]*CharacterDefinition{}
	for _, def := range []*CharacterDefinition{agumon, greymon, gabumon, garurumon, patamon, angemon} {
		Characters[def.ID] = def
	}
}
