package factory

import (
	"fmt"
	"log"

	"github.com/automoto/digimorph/assets"
	cfg "github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

// DefaultEnergyPickup is granted by energy pickups placed without an amount.
const DefaultEnergyPickup = 10

// BuildArena creates the collision space, clock, walls, enemies and pickups
// described by arena, then spawns the agent at the first spawn point.
func BuildArena(w donburi.World, arena assets.Arena, def *cfg.CharacterDefinition, roster ...*cfg.CharacterDefinition) (*donburi.Entry, error) {
	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("arena %s has no spawn points", arena.Name)
	}

	cell := cfg.Sim.CellSize
	if cell <= 0 {
		cell = 16
	}
	CreateSpace(w, arena.Width, arena.Height, cell, cell)
	CreateClock(w)

	for _, r := range arena.Walls {
		CreateWall(w, r.X, r.Y, r.Width, r.Height)
	}

	for _, e := range arena.Enemies {
		def, ok := cfg.Enemies[e.EnemyType]
		if !ok {
			log.Printf("[arena] unknown enemy type %q", e.EnemyType)
			continue
		}
		CreateEnemy(w, e.X, e.Y, def, e.Patrol)
	}

	for _, p := range arena.Pickups {
		switch p.Kind {
		case "energy":
			amount := p.Amount
			if amount <= 0 {
				amount = DefaultEnergyPickup
			}
			CreateEnergyPickup(w, p.X, p.Y, amount)
		case "unlock":
			CreateUnlockPickup(w, p.X, p.Y, cfg.Characters[p.Character])
		default:
			log.Printf("[arena] unknown pickup kind %q", p.Kind)
		}
	}

	spawn := arena.Spawns[0]
	return CreateAgent(w, spawn.X, spawn.Y, def, roster...), nil
}
