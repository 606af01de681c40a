package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

type AttackKind int

const (
	AttackMelee AttackKind = iota
	AttackProjectile
)

type ProjectilePhase int

const (
	ProjectileHovering ProjectilePhase = iota
	ProjectileLaunched
)

// AttackData is a live melee hitbox or projectile.
type AttackData struct {
	Kind    AttackKind
	Owner   *donburi.Entry
	Damage  int
	Element config.Element
	HitMask config.LayerMask
	Facing  float64

	// Follow keeps the instance on the owner's spawn point while set.
	Follow  bool
	OffsetX float64 // pixels in front of the owner's leading edge
	OffsetY float64 // pixels above the owner's vertical centre

	// Remaining lifetime in seconds. Projectiles start counting at launch.
	Remaining float64

	// Projectile motion
	Phase         ProjectilePhase
	Elapsed       float64
	HoverDuration float64
	Speed         float64
	Lifetime      float64
	VelocityX     float64 // world units per second once launched

	Hits int
}

var Attack = donburi.NewComponentType[AttackData]()
