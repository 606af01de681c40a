package systems

import (
	"github.com/automoto/digimorph/components"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies walks every enemy back and forth between its patrol bounds,
// turning around at walls.
func UpdateEnemies(w donburi.World) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		if enemy.Definition == nil || enemy.PatrolLeft >= enemy.PatrolRight {
			physics.SpeedX = 0
			return
		}

		switch {
		case physics.OnWall != nil:
			enemy.Direction = -enemy.Direction
		case obj.X <= enemy.PatrolLeft:
			enemy.Direction = 1
		case obj.X >= enemy.PatrolRight:
			enemy.Direction = -1
		}
		physics.SpeedX = enemy.Definition.MoveSpeed * enemy.Direction
	})
}
