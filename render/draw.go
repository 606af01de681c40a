package render

import (
	"image/color"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorBackground = color.RGBA{24, 26, 38, 255}
	colorWall       = color.RGBA{90, 90, 110, 255}
	colorEnemy      = color.RGBA{200, 60, 60, 255}
	colorHitbox     = color.RGBA{255, 240, 120, 200}
	colorProjectile = color.RGBA{255, 160, 40, 255}
	colorEnergy     = color.RGBA{80, 220, 255, 255}
	colorUnlock     = color.RGBA{255, 120, 255, 255}
	colorDisabled   = color.RGBA{80, 80, 80, 255}
)

var elementColors = map[cfg.Element]color.RGBA{
	cfg.ElementNone:  {200, 200, 200, 255},
	cfg.ElementFire:  {255, 120, 40, 255},
	cfg.ElementIce:   {120, 200, 255, 255},
	cfg.ElementWater: {40, 120, 255, 255},
	cfg.ElementLight: {255, 240, 150, 255},
	cfg.ElementDark:  {150, 90, 200, 255},
}

// DrawWorld renders every collision object as a flat rectangle.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colorBackground)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := Offset(e.World, float64(width), float64(height))

	rect := func(entry *donburi.Entry, c color.Color) {
		o := components.Object.Get(entry)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		rect(entry, colorWall)
	})
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		if components.Pickup.Get(entry).Kind == components.PickupUnlock {
			rect(entry, colorUnlock)
			return
		}
		rect(entry, colorEnergy)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		rect(entry, colorEnemy)
	})
	tags.Agent.Each(e.World, func(entry *donburi.Entry) {
		drawAgent(screen, entry, camX, camY)
	})
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		rect(entry, colorHitbox)
	})
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		rect(entry, colorProjectile)
	})
}

func drawAgent(screen *ebiten.Image, entry *donburi.Entry, camX, camY float64) {
	o := components.Object.Get(entry)
	agent := components.Agent.Get(entry)
	x, y := float32(o.X+camX), float32(o.Y+camY)

	if entry.HasComponent(tags.Disabled) || agent.Definition == nil {
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), colorDisabled, false)
		return
	}

	body := elementColors[agent.Definition.Element]
	var scale ebiten.ColorScale
	scale.ScaleWithColor(body)

	if entry.HasComponent(components.Cue) {
		cue := components.Cue.Get(entry)
		if cue.Morph != nil {
			// Pulse brightness while a transformation plays out.
			pulse := 0.5 + 0.5*cue.MorphValue
			scale.Reset()
			scale.Scale(pulse, pulse, pulse, 1)
		}
	}
	vector.FillRect(screen, x, y, float32(o.W), float32(o.H), colorFrom(scale), false)

	// Eye on the facing side.
	eyeX := x + float32(o.W) - 4
	if agent.Facing < 0 {
		eyeX = x + 1
	}
	vector.FillRect(screen, eyeX, y+4, 3, 3, color.Black, false)

	if agent.Attacking {
		vector.StrokeRect(screen, x-1, y-1, float32(o.W)+2, float32(o.H)+2, 1, colorHitbox, false)
	}
}

func colorFrom(scale ebiten.ColorScale) color.RGBA {
	to8 := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v * 255)
	}
	return color.RGBA{to8(scale.R()), to8(scale.G()), to8(scale.B()), to8(scale.A())}
}
