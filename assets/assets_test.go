package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrainingArena(t *testing.T) {
	arena, err := LoadArena("arenas/training.tmx")
	require.NoError(t, err)

	assert.Equal(t, 960, arena.Width)
	assert.Equal(t, 368, arena.Height)
	assert.Len(t, arena.Walls, 6)
	require.Len(t, arena.Spawns, 1)
	assert.Equal(t, Spawn{X: 64, Y: 300}, arena.Spawns[0])

	require.Len(t, arena.Enemies, 4)
	assert.Equal(t, "goblimon", arena.Enemies[0].EnemyType)
	assert.Equal(t, 32.0, arena.Enemies[0].Patrol)

	require.Len(t, arena.Pickups, 4)
	assert.Equal(t, "energy", arena.Pickups[0].Kind)
	assert.Equal(t, 50, arena.Pickups[0].Amount)
	assert.Equal(t, "unlock", arena.Pickups[3].Kind)
	assert.Equal(t, "patamon", arena.Pickups[3].Character)
}

func TestLoadArenaWithoutSpawns(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`)},
	}

	_, err := LoadArenaFS(fsys, "empty.tmx")
	assert.ErrorContains(t, err, "no spawn points")
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena("arenas/nope.tmx")
	assert.Error(t, err)
}
