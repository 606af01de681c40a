package factory

import (
	"github.com/automoto/digimorph/archetypes"
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateHitbox spawns a melee hitbox in front of owner. It follows the
// owner for its whole lifetime.
func CreateHitbox(w donburi.World, owner *donburi.Entry, melee cfg.MeleeAttack, element cfg.Element, facing float64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)

	width, height := cfg.Sim.HitboxWidth, cfg.Sim.HitboxHeight
	ownerObj := components.Object.Get(owner)
	x, y := PlaceInFront(ownerObj.Object, facing, cfg.Sim.MeleeSpawnOffset, 0, width, height)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvAttack)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Parent.SetValue(hitbox, components.ParentData{Parent: owner})
	components.Attack.SetValue(hitbox, components.AttackData{
		Kind:      components.AttackMelee,
		Owner:     owner,
		Damage:    melee.Damage,
		Element:   element,
		HitMask:   cfg.Sim.AgentHitMask,
		Facing:    facing,
		Follow:    true,
		OffsetX:   cfg.Sim.MeleeSpawnOffset,
		Remaining: melee.EffectiveLifetime(),
	})

	return hitbox
}

// PlaceInFront returns the top-left corner of a width x height box whose
// near edge sits offsetX pixels past owner's leading edge and whose centre
// is offsetY pixels above owner's centre.
func PlaceInFront(owner *resolv.Object, facing, offsetX, offsetY, width, height float64) (float64, float64) {
	centerY := owner.Y + owner.H/2 - offsetY
	y := centerY - height/2
	if facing < 0 {
		return owner.X - offsetX - width, y
	}
	return owner.X + owner.W + offsetX, y
}
