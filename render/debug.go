package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/digimorph/components"
	"github.com/automoto/digimorph/fonts"
	"github.com/automoto/digimorph/systems"
	"github.com/automoto/digimorph/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// first agent's phase and timers.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := Offset(e.World, float64(width), float64(height))

	for _, obj := range space.Objects() {
		x, y := float32(obj.X+camX), float32(obj.Y+camY)
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvAgent):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvAttack):
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		hp := components.Health.Get(entry)
		text.Draw(screen, fmt.Sprintf("%d/%d", hp.Current, hp.Max), fonts.Small.Get(),
			int(o.X+camX), int(o.Y+camY)-2, color.White)
	})

	entry, ok := tags.Agent.First(e.World)
	if !ok {
		return
	}
	agent := components.Agent.Get(entry)
	physics := components.Physics.Get(entry)
	lines := fmt.Sprintf("t=%.2f phase=%s ground=%t wall=%t attacking=%t\nvx=%.2f vy=%.2f fuel=%.2f",
		systems.Now(e.World), agent.Phase, agent.Grounded, agent.TouchingWall, agent.Attacking,
		physics.SpeedX, physics.SpeedY, agent.Fuel)
	text.Draw(screen, lines, fonts.Small.Get(), hudMargin, height-24, color.White)
}
