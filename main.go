package main

import (
	"image"
	"log"

	"github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/fonts"
	"github.com/automoto/digimorph/scenes"
	"github.com/automoto/digimorph/settings"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store *settings.Store) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, config.Launch, store)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Launch.Width, config.Launch.Height)
	return config.Launch.Width, config.Launch.Height
}

func main() {
	launch, err := config.ParseLaunch()
	if err != nil {
		log.Fatalf("Failed to read launch config: %v", err)
	}
	config.Launch = launch

	if launch.TuningPath != "" {
		if err := config.LoadTuning(launch.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Settings are optional; a nil store keeps defaults for this run.
	store, err := settings.Open("digimorph")
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	scale := store.Load().WindowScale

	ebiten.SetWindowSize(launch.Width*scale, launch.Height*scale)
	ebiten.SetWindowTitle("digimorph")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(NewGame(store)); err != nil {
		log.Fatal(err)
	}
}
