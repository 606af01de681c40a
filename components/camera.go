package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed offset toward the agent's facing
}

var Camera = donburi.NewComponentType[CameraData]()
