package tags

import "github.com/yohamta/donburi"

var (
	Agent      = donburi.NewTag().SetName("Agent")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Attack     = donburi.NewTag().SetName("Attack")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Disabled   = donburi.NewTag().SetName("Disabled")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvAgent  = "agent"
	ResolvEnemy  = "enemy"
	ResolvTarget = "target" // anything with health an attack may hit
	ResolvAttack = "attack"
	ResolvPickup = "pickup"
)
