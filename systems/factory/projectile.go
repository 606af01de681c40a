package factory

import (
	"github.com/automoto/digimorph/archetypes"
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a ranged attack hovering at owner's muzzle point.
// Its lifetime starts counting once it launches.
func CreateProjectile(w donburi.World, owner *donburi.Entry, ranged cfg.RangedAttack, element cfg.Element, facing float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(w)

	width, height := cfg.Sim.ProjectileWidth, cfg.Sim.ProjectileHeight
	ownerObj := components.Object.Get(owner)
	x, y := PlaceInFront(ownerObj.Object, facing, cfg.Sim.ProjectileSpawnOffset, cfg.Sim.ProjectileSpawnRise, width, height)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvAttack)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Parent.SetValue(projectile, components.ParentData{Parent: owner})
	components.Attack.SetValue(projectile, components.AttackData{
		Kind:          components.AttackProjectile,
		Owner:         owner,
		Damage:        ranged.Damage,
		Element:       element,
		HitMask:       cfg.Sim.AgentHitMask,
		Facing:        facing,
		Follow:        true,
		OffsetX:       cfg.Sim.ProjectileSpawnOffset,
		OffsetY:       cfg.Sim.ProjectileSpawnRise,
		Phase:         components.ProjectileHovering,
		HoverDuration: ranged.EffectiveHoverTime(),
		Speed:         ranged.Speed,
		Lifetime:      ranged.EffectiveLifetime(),
	})

	return projectile
}
