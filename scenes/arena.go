package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/digimorph/assets"
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/fonts"
	"github.com/automoto/digimorph/input"
	"github.com/automoto/digimorph/render"
	"github.com/automoto/digimorph/settings"
	"github.com/automoto/digimorph/systems"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/automoto/digimorph/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerDebug
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene runs the character core in a single arena with one local
// agent.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	launch       cfg.LaunchConfig
	store        *settings.Store
	settings     settings.Settings
	arena        assets.Arena
	agent        *donburi.Entry
	pauseUI      *ui.PauseUI
	paused       bool
	once         sync.Once
	err          error
}

// NewArenaScene creates the arena scene. store may be nil, in which case
// settings changes are not kept.
func NewArenaScene(sc SceneChanger, launch cfg.LaunchConfig, store *settings.Store) *ArenaScene {
	saved := store.Load()
	if launch.Debug {
		saved.Debug = true
	}
	return &ArenaScene{sceneChanger: sc, launch: launch, store: store, settings: saved}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.err != nil {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		as.restart()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		as.paused = !as.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		as.toggleDebug()
	}
	if as.paused {
		as.updatePauseUI()
		return
	}
	as.ecs.Update()
}

// restart replaces the scene with a fresh world.
func (as *ArenaScene) restart() {
	as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.launch, as.store))
}

func (as *ArenaScene) toggleDebug() {
	as.settings.Debug = !as.settings.Debug
	if err := as.store.Save(as.settings); err != nil {
		log.Printf("[scene] %v", err)
	}
}

func (as *ArenaScene) updatePauseUI() {
	if as.agent != nil && as.agent.Valid() && as.agent.HasComponent(components.Roster) {
		roster := components.Roster.Get(as.agent)
		names := make([]string, 0, len(roster.Unlocked))
		for _, def := range roster.Unlocked {
			names = append(names, def.DisplayName)
		}
		as.pauseUI.SetRoster(names, roster.Index)
	}
	as.pauseUI.UI.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.err != nil {
		text.Draw(screen, as.err.Error(), fonts.Regular.Get(), 10, 20, color.White)
		return
	}
	if as.ecs == nil {
		return
	}
	as.ecs.DrawLayer(LayerWorld, screen)
	as.ecs.DrawLayer(LayerHUD, screen)
	if as.settings.Debug {
		as.ecs.DrawLayer(LayerDebug, screen)
	}
	if as.paused {
		as.pauseUI.UI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	arena, err := assets.LoadArena(as.launch.Arena)
	if err != nil {
		log.Printf("[scene] %v", err)
		as.err = err
		return
	}
	as.arena = arena

	start, roster := as.startingRoster()

	world := donburi.NewWorld()
	agent, err := factory.BuildArena(world, arena, start, roster...)
	if err != nil {
		log.Printf("[scene] %v", err)
		as.err = err
		return
	}
	as.agent = agent

	spawn := arena.Spawns[0]
	render.CreateCamera(world, spawn.X, spawn.Y)
	systems.EnableCues(world)
	hud := render.NewHUD(world)

	e := ecs.NewECS(world)
	e.AddSystem(as.pollInput)
	e.AddSystem(as.tick)
	e.AddSystem(as.updateCamera)

	e.AddRenderer(LayerWorld, render.DrawWorld)
	e.AddRenderer(LayerHUD, hud.Draw)
	e.AddRenderer(LayerDebug, render.DrawDebug)

	as.ecs = e

	as.pauseUI = ui.NewPauseUI(ui.PauseActions{
		Resume:      func() { as.paused = false },
		Restart:     as.restart,
		ToggleDebug: as.toggleDebug,
		Swap: func(index int) {
			// Applied on the first tick after resuming.
			systems.QueueSwap(as.agent, index)
			as.paused = false
		},
	})
}

// startingRoster resolves the launch character ids against the catalog.
// Unknown ids are logged and skipped.
func (as *ArenaScene) startingRoster() (*cfg.CharacterDefinition, []*cfg.CharacterDefinition) {
	start := cfg.Characters[as.launch.Start]
	if start == nil {
		log.Printf("[scene] unknown start character %q", as.launch.Start)
	}
	var roster []*cfg.CharacterDefinition
	for _, id := range as.launch.Roster {
		def, ok := cfg.Characters[id]
		if !ok {
			log.Printf("[scene] unknown roster character %q", id)
			continue
		}
		roster = append(roster, def)
	}
	return start, roster
}

func (as *ArenaScene) pollInput(e *ecs.ECS) {
	if as.agent == nil || !as.agent.Valid() {
		return
	}
	input.Poll(as.agent)
}

func (as *ArenaScene) tick(e *ecs.ECS) {
	systems.Tick(e.World, cfg.Sim.TickDelta())
}

func (as *ArenaScene) updateCamera(e *ecs.ECS) {
	render.UpdateCamera(e.World, render.Viewport{
		Width:       float64(as.launch.Width),
		Height:      float64(as.launch.Height),
		ArenaWidth:  float64(as.arena.Width),
		ArenaHeight: float64(as.arena.Height),
	})
}
