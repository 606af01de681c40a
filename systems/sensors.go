package systems

import (
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateSensors refreshes the ground and wall booleans of every agent from
// the collision space. The wall sensor probes the facing side only.
func UpdateSensors(w donburi.World) {
	depth := cfg.Sim.SensorDepth
	tags.Agent.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Disabled) {
			return
		}
		agent := components.Agent.Get(e)
		obj := components.Object.Get(e).Object

		agent.Grounded = Overlaps(obj, 0, depth, tags.ResolvSolid)
		agent.TouchingWall = Overlaps(obj, agent.Facing*depth, 0, tags.ResolvSolid)
	})
}

// probeWall re-reads the wall sensor after the agent turned mid-tick.
func probeWall(e *donburi.Entry, agent *components.AgentData) {
	obj := components.Object.Get(e).Object
	agent.TouchingWall = Overlaps(obj, agent.Facing*cfg.Sim.SensorDepth, 0, tags.ResolvSolid)
}

// Overlaps reports whether obj, displaced by (dx, dy), strictly overlaps any
// other object carrying one of tagList. Touching edges do not count.
func Overlaps(obj *resolv.Object, dx, dy float64, tagList ...string) bool {
	return len(overlapping(obj, dx, dy, tagList...)) > 0
}

// overlapping narrows the space's cell candidates to true box overlaps.
func overlapping(obj *resolv.Object, dx, dy float64, tagList ...string) []*resolv.Object {
	if obj == nil {
		return nil
	}
	check := obj.Check(dx, dy, tagList...)
	if check == nil {
		return nil
	}
	var found []*resolv.Object
	for _, other := range check.Objects {
		if other == obj || !other.HasTags(tagList...) {
			continue
		}
		if boxesOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, other) {
			found = append(found, other)
		}
	}
	return found
}

func boxesOverlap(x, y, width, height float64, other *resolv.Object) bool {
	return x < other.X+other.W && x+width > other.X &&
		y < other.Y+other.H && y+height > other.Y
}
