package render

import (
	"math"

	"github.com/automoto/digimorph/components"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	followSmoothing    = 0.15
	lookAheadDistance  = 40.0
	lookAheadSmoothing = 0.05
	lookAheadThreshold = 0.1 // world units per second
)

// Viewport is the visible region size and the arena it looks into, in pixels.
type Viewport struct {
	Width, Height           float64
	ArenaWidth, ArenaHeight float64
}

// CreateCamera adds the camera entity centred on x, y.
func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	entry := w.Entry(w.Create(components.Camera))
	components.Camera.SetValue(entry, components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
	})
	return entry
}

// UpdateCamera eases the camera toward the first live agent, keeping the
// arena filling the screen.
func UpdateCamera(w donburi.World, view Viewport) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	agentEntry, ok := tags.Agent.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(agentEntry)
	agent := components.Agent.Get(agentEntry)
	physics := components.Physics.Get(agentEntry)

	// Freeze the look-ahead when idle.
	if math.Abs(physics.SpeedX) > lookAheadThreshold {
		target := agent.Facing * lookAheadDistance
		camera.LookAheadX += (target - camera.LookAheadX) * lookAheadSmoothing
	}

	targetX := obj.X + obj.W/2 + camera.LookAheadX
	targetY := obj.Y + obj.H/2
	targetX, targetY = clampToArena(targetX, targetY, view)

	camera.Position.X += (targetX - camera.Position.X) * followSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * followSmoothing
}

// clampToArena keeps a camera centre inside the arena. An arena smaller
// than the view is centred.
func clampToArena(x, y float64, view Viewport) (float64, float64) {
	clamp := func(v, size, arena float64) float64 {
		if arena <= size {
			return arena / 2
		}
		return math.Max(size/2, math.Min(arena-size/2, v))
	}
	return clamp(x, view.Width, view.ArenaWidth), clamp(y, view.Height, view.ArenaHeight)
}

// Offset returns the translation from world to screen pixels.
func Offset(w donburi.World, screenW, screenH float64) (float64, float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return screenW/2 - camera.Position.X, screenH/2 - camera.Position.Y
}
