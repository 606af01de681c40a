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

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
	hudLine      = 14
)

// HUD caches the last energy reading per agent so drawing never touches the
// ledger directly.
type HUD struct {
	energy  map[donburi.Entity]components.EnergyChanged
	message string
}

// NewHUD subscribes a HUD to the world's energy and target events.
func NewHUD(w donburi.World) *HUD {
	h := &HUD{energy: map[donburi.Entity]components.EnergyChanged{}}
	components.EnergyChangedEvent.Subscribe(w, h.onEnergy)
	components.TargetDestroyedEvent.Subscribe(w, h.onTargetDestroyed)
	return h
}

func (h *HUD) onEnergy(_ donburi.World, event components.EnergyChanged) {
	if event.Agent == nil {
		return
	}
	h.energy[event.Agent.Entity()] = event
}

func (h *HUD) onTargetDestroyed(_ donburi.World, event components.TargetDestroyed) {
	if event.Enemy != nil {
		h.message = fmt.Sprintf("%s defeated", event.Enemy.DisplayName)
	}
}

// Draw renders the first agent's energy, flight fuel and roster.
func (h *HUD) Draw(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Agent.First(e.World)
	if !ok {
		return
	}
	agent := components.Agent.Get(entry)
	face := fonts.Regular.Get()

	name := "inactive"
	if agent.Definition != nil {
		name = agent.Definition.DisplayName
	}
	text.Draw(screen, name, fonts.Title.Get(), hudMargin, hudMargin+16, color.White)

	y := float32(hudMargin + 24)
	reading, ok := h.energy[entry.Entity()]
	if !ok {
		reading = components.EnergyChanged{Current: systems.Energy(entry), Max: systems.MaxEnergy(entry)}
	}
	drawBar(screen, y, ratio(float64(reading.Current), float64(reading.Max)), colorEnergy)
	text.Draw(screen, fmt.Sprintf("%d/%d", reading.Current, reading.Max), fonts.Small.Get(), hudMargin+hudBarWidth+6, int(y)+9, color.White)

	if def := agent.Definition; def != nil && def.CanFly && def.LimitFlight {
		y += hudBarHeight + 4
		drawBar(screen, y, ratio(agent.Fuel, def.MaxFlyTime), color.RGBA{240, 240, 240, 255})
	}

	if entry.HasComponent(components.Roster) {
		roster := components.Roster.Get(entry)
		for i, def := range roster.Unlocked {
			label := fmt.Sprintf("%d %s", i+1, def.DisplayName)
			c := color.RGBA{150, 150, 150, 255}
			if i == roster.Index {
				c = color.RGBA{255, 255, 255, 255}
			}
			text.Draw(screen, label, face, hudMargin, int(y)+hudLine*(i+2), c)
		}
	}

	if h.message != "" {
		width := screen.Bounds().Dx()
		text.Draw(screen, h.message, face, width-hudMargin-140, hudMargin+12, color.White)
	}
}

func drawBar(screen *ebiten.Image, y float32, fill float64, c color.Color) {
	vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, hudMargin, y, float32(hudBarWidth*fill), hudBarHeight, c, false)
}

func ratio(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	r := current / max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
