package systems

import (
	"testing"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestDisabledAgentNeverTicks(t *testing.T) {
	w := newTestWorld(t)
	agent := factory.CreateAgent(w, 100, 20, nil)
	obj := components.Object.Get(agent).Object
	y := obj.Y

	QueueAction(agent, cfg.ActionJump)
	for i := 0; i < 8; i++ {
		Tick(w, step)
	}

	assert.Equal(t, y, obj.Y)
	assert.Nil(t, CurrentDefinition(agent))
	assert.Equal(t, 0, Energy(agent))
	assert.False(t, RequestEvolution(w, agent, 0))
}

func TestClock(t *testing.T) {
	w := newTestWorld(t)

	UpdateClock(w, 0.5)
	UpdateClock(w, -1)
	UpdateClock(w, 0.25)

	assert.Equal(t, 0.75, Now(w))
	assert.Equal(t, uint64(3), clockOf(w).Tick)
}
