package systems

import (
	"math"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateBodies integrates the velocity of every agent and enemy into its
// collision object and stops it against solids. Velocities are in world
// units per second with y pointing up; the space is in pixels with y down.
func UpdateBodies(w donburi.World) {
	clock := clockOf(w)
	if clock == nil || clock.Delta <= 0 {
		return
	}
	dt := clock.Delta
	scale := cfg.Sim.UnitScale

	components.Physics.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Disabled) || !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.SpeedY -= physics.Gravity * dt
		if physics.MaxFall > 0 {
			physics.SpeedY = math.Max(physics.SpeedY, -physics.MaxFall)
		}

		moveHorizontal(physics, obj, physics.SpeedX*scale*dt)
		moveVertical(physics, obj, -physics.SpeedY*scale*dt)
		obj.Update()
	})
}

func moveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	physics.OnWall = nil
	if dx == 0 {
		return
	}

	solids := overlapping(obj, dx, 0, tags.ResolvSolid)
	if len(solids) == 0 {
		obj.X += dx
		return
	}

	// Snap to the nearest face along the direction of travel.
	nearest := solids[0]
	for _, solid := range solids[1:] {
		if dx > 0 && solid.X < nearest.X || dx < 0 && solid.X+solid.W > nearest.X+nearest.W {
			nearest = solid
		}
	}
	if dx > 0 {
		obj.X = math.Min(obj.X+dx, nearest.X-obj.W)
	} else {
		obj.X = math.Max(obj.X+dx, nearest.X+nearest.W)
	}
	physics.OnWall = nearest
	physics.SpeedX = 0
}

func moveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = nil
	if dy == 0 {
		return
	}

	solids := overlapping(obj, 0, dy, tags.ResolvSolid)
	if len(solids) == 0 {
		obj.Y += dy
		return
	}

	nearest := solids[0]
	for _, solid := range solids[1:] {
		if dy > 0 && solid.Y < nearest.Y || dy < 0 && solid.Y+solid.H > nearest.Y+nearest.H {
			nearest = solid
		}
	}
	if dy > 0 {
		obj.Y = math.Min(obj.Y+dy, nearest.Y-obj.H)
		physics.OnGround = nearest
	} else {
		obj.Y = math.Max(obj.Y+dy, nearest.Y+nearest.H)
	}
	physics.SpeedY = 0
}
