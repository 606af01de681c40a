package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData is the velocity an entity asks the physics world to apply.
// SpeedY is positive upwards, in world units per second.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64 // world units per second squared, 0 for flyers
	MaxFall  float64
	OnGround *resolv.Object
	OnWall   *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Velocity returns the current velocity as a vector.
func (p *PhysicsData) Velocity() math.Vec2 {
	return math.Vec2{X: p.SpeedX, Y: p.SpeedY}
}

// SetVelocity overwrites both velocity components.
func (p *PhysicsData) SetVelocity(v math.Vec2) {
	p.SpeedX = v.X
	p.SpeedY = v.Y
}
