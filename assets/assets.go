package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:arenas
var arenaFS embed.FS

// Arena is the playfield layout read from a Tiled map.
type Arena struct {
	Name   string
	Width  int
	Height int

	Walls   []Rect
	Spawns  []Spawn
	Enemies []EnemySpawn
	Pickups []PickupSpawn
}

type Rect struct {
	X, Y, Width, Height float64
}

type Spawn struct {
	X, Y float64
}

type EnemySpawn struct {
	X, Y      float64
	EnemyType string
	Patrol    float64 // pixels to either side of X
}

type PickupSpawn struct {
	X, Y      float64
	Kind      string // object name: "energy" or "unlock"
	Amount    int
	Character string
}

// LoadArena reads an arena map bundled with the binary.
func LoadArena(path string) (Arena, error) {
	return LoadArenaFS(arenaFS, path)
}

// LoadArenaFS reads an arena map from fsys. Object groups are matched by
// name: Walls, Spawns, Enemies and Pickups.
func LoadArenaFS(fsys fs.FS, path string) (Arena, error) {
	arenaMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Arena{}, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := Arena{
		Name:   path,
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, Spawn{X: o.X, Y: o.Y})
			}
			// Leftmost spawn first
			sort.Slice(arena.Spawns, func(i, j int) bool {
				return arena.Spawns[i].X < arena.Spawns[j].X
			})
		case "Enemies":
			for _, o := range og.Objects {
				arena.Enemies = append(arena.Enemies, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
					Patrol:    o.Properties.GetFloat("patrol"),
				})
			}
		case "Pickups":
			for _, o := range og.Objects {
				arena.Pickups = append(arena.Pickups, PickupSpawn{
					X:         o.X,
					Y:         o.Y,
					Kind:      o.Name,
					Amount:    o.Properties.GetInt("amount"),
					Character: o.Properties.GetString("character"),
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return arena, fmt.Errorf("load arena %s: no spawn points", path)
	}
	return arena, nil
}
