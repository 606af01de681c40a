package archetypes

import (
	"github.com/automoto/digimorph/components"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
)

var (
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Intent,
		components.Energy,
		components.Roster,
		components.Morph,
		components.Cue,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
	)
	Hitbox = newArchetype(
		tags.Attack,
		tags.Hitbox,
		components.Attack,
		components.Object,
		components.Parent,
	)
	Projectile = newArchetype(
		tags.Attack,
		tags.Projectile,
		components.Attack,
		components.Object,
		components.Parent,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
