package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space shared by every object in the world.
var Space = donburi.NewComponentType[resolv.Space]()

// ParentData links an entity to the entity that spawned it.
type ParentData struct {
	Parent *donburi.Entry
}

var Parent = donburi.NewComponentType[ParentData]()

const maxParentDepth = 32

// IsSelfOrDescendant reports whether e is ancestor or was spawned, directly
// or transitively, by ancestor.
func IsSelfOrDescendant(e, ancestor *donburi.Entry) bool {
	if e == nil || ancestor == nil {
		return false
	}
	cur := e
	for depth := 0; cur != nil && depth < maxParentDepth; depth++ {
		if cur.Entity() == ancestor.Entity() {
			return true
		}
		if !cur.Valid() || !cur.HasComponent(Parent) {
			return false
		}
		cur = Parent.Get(cur).Parent
	}
	return false
}
