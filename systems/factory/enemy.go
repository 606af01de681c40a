package factory

import (
	"log"

	"github.com/automoto/digimorph/archetypes"
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a damageable target. patrol is the distance in pixels
// the enemy walks to either side of x; 0 keeps it in place.
func CreateEnemy(w donburi.World, x, y float64, def *cfg.EnemyDefinition, patrol float64) *donburi.Entry {
	if def == nil {
		log.Printf("[enemy] definition missing at (%.0f, %.0f), not spawned", x, y)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Sim.EnemyWidth, cfg.Sim.EnemyHeight, tags.ResolvEnemy, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Sim.EnemyWidth, cfg.Sim.EnemyHeight))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Definition:  def,
		Direction:   cfg.DirectionLeft,
		PatrolLeft:  x - patrol,
		PatrolRight: x + patrol,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: def.MaxHealth,
		Max:     def.MaxHealth,
		Element: def.Element,
		Layer:   cfg.LayerEnemy,
	})

	gravity := cfg.Sim.Gravity
	if def.CanFly {
		gravity = 0
	}
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity: gravity,
		MaxFall: cfg.Sim.MaxFallSpeed,
	})

	return enemy
}
