package factory

import (
	"github.com/automoto/digimorph/archetypes"
	"github.com/automoto/digimorph/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceOf returns the world's collision space or nil.
func SpaceOf(w donburi.World) *resolv.Space {
	if spaceEntry, ok := components.Space.First(w); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

func CreateClock(w donburi.World) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if space := SpaceOf(w); space != nil {
		space.Add(obj)
	}
}

// RemoveObject takes e's collision object out of the space.
func RemoveObject(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return
	}
	if space := SpaceOf(w); space != nil {
		space.Remove(obj.Object)
	}
}
