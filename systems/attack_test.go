package systems

import (
	"testing"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/automoto/digimorph/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func dummyEnemy(health int, element cfg.Element) *cfg.EnemyDefinition {
	return &cfg.EnemyDefinition{ID: "dummy", Element: element, MaxHealth: health}
}

func countTagged(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func TestAttackCooldown(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionMelee)
	stepAgents(w, step)
	first := agentOf(agent).LastMeleeAt
	require.Equal(t, step, first)

	// 0.5 s cooldown: refused until exactly eight steps later.
	for i := 0; i < 7; i++ {
		QueueAction(agent, cfg.ActionMelee)
		stepAgents(w, step)
		assert.Equal(t, first, agentOf(agent).LastMeleeAt)
	}
	QueueAction(agent, cfg.ActionMelee)
	stepAgents(w, step)
	assert.Equal(t, first+0.5, agentOf(agent).LastMeleeAt)
}

func TestAttackCooldownsAreIndependent(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionMelee)
	stepAgents(w, step)
	QueueAction(agent, cfg.ActionRanged)
	stepAgents(w, step)

	assert.Equal(t, step, agentOf(agent).LastMeleeAt)
	assert.Equal(t, 2*step, agentOf(agent).LastRangedAt)
	assert.Equal(t, 1, countTagged(w, tags.Hitbox))
	assert.Equal(t, 1, countTagged(w, tags.Projectile))
}

func TestAttackingClearsOnlyOnAcknowledgment(t *testing.T) {
	withSim(t, func(s *cfg.SimulationConfig) { s.AttackAckTimeout = 0 })
	w := newTestWorld(t)
	rec := record(w)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)
	require.True(t, agentOf(agent).Attacking)
	require.True(t, rec.saw(components.SignalAttackStarted))

	for i := 0; i < 160; i++ {
		Tick(w, step)
	}
	assert.True(t, agentOf(agent).Attacking)
	assert.False(t, rec.saw(components.SignalAttackEnded))

	OnAttackAnimationEnd(w, agent)
	assert.False(t, agentOf(agent).Attacking)
	ProcessSignals(w)
	assert.True(t, rec.saw(components.SignalAttackEnded))
}

func TestAttackAcknowledgmentFallback(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)

	for Now(w)+step < step+cfg.Sim.AttackAckTimeout {
		Tick(w, step)
		require.True(t, agentOf(agent).Attacking, "cleared early at t=%v", Now(w))
	}
	Tick(w, step)
	assert.False(t, agentOf(agent).Attacking)
}

func TestAttackWithoutPrefabConsumesCooldown(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	def := walkerDef()
	def.Melee.Prefab = ""
	agent := standingAt(w, 100, def)

	QueueAction(agent, cfg.ActionMelee)
	stepAgents(w, step)

	assert.False(t, agentOf(agent).Attacking)
	assert.Equal(t, step, agentOf(agent).LastMeleeAt)
	assert.Equal(t, 0, countTagged(w, tags.Hitbox))
	assert.False(t, rec.saw(components.SignalAttackStarted))
}

func TestMeleeHitsRepeatedlyWithinLifetime(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())
	enemy := factory.CreateEnemy(w, 100+cfg.Sim.AgentWidth+4, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	health := components.Health.Get(enemy)

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)
	assert.Equal(t, 4, health.Current)

	Tick(w, step)
	Tick(w, step)
	assert.Equal(t, 2, health.Current, "one hit per tick while overlapping")

	hitbox, ok := tags.Hitbox.First(w)
	require.True(t, ok)
	assert.Equal(t, 3, components.Attack.Get(hitbox).Hits)
}

func TestMeleeExpiresAfterLifetime(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)
	require.Equal(t, 1, countTagged(w, tags.Hitbox))

	// 0.5 s lifetime is eight ticks including the spawn tick.
	for i := 0; i < 6; i++ {
		Tick(w, step)
	}
	assert.Equal(t, 1, countTagged(w, tags.Hitbox))
	Tick(w, step)
	assert.Equal(t, 0, countTagged(w, tags.Hitbox))
}

func TestMeleeKillsAndRemovesTarget(t *testing.T) {
	w := newTestWorld(t)
	rec := record(w)
	agent := standingAt(w, 100, walkerDef())
	enemy := factory.CreateEnemy(w, 100+cfg.Sim.AgentWidth+4, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(2, cfg.ElementNone), 0)
	entity := enemy.Entity()

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)
	Tick(w, step)

	assert.False(t, w.Valid(entity))
	require.Len(t, rec.destroyed, 1)
	assert.Len(t, rec.hits, 2)
}

func TestProjectileHoversThenLaunches(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())

	QueueAction(agent, cfg.ActionRanged)
	Tick(w, step)

	projectile, ok := tags.Projectile.First(w)
	require.True(t, ok)
	attack := components.Attack.Get(projectile)
	obj := components.Object.Get(projectile).Object
	agentObj := components.Object.Get(agent).Object

	// Hovering tracks the owner and ignores any velocity it was given.
	attack.VelocityX = 99
	agentObj.X += 10
	agentObj.Update()
	Tick(w, step)
	assert.Equal(t, components.ProjectileHovering, attack.Phase)
	assert.Equal(t, 0.0, attack.VelocityX)
	assert.Equal(t, agentObj.X+agentObj.W+cfg.Sim.ProjectileSpawnOffset, obj.X)

	for attack.Phase == components.ProjectileHovering {
		Tick(w, step)
	}
	assert.Equal(t, 0.25, attack.Elapsed)
	assert.Equal(t, 10.0, attack.VelocityX)

	x := obj.X
	Tick(w, step)
	assert.Equal(t, x+10*cfg.Sim.UnitScale*step, obj.X)
}

func TestProjectileSingleHit(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())
	enemy := factory.CreateEnemy(w, 300, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	health := components.Health.Get(enemy)

	QueueAction(agent, cfg.ActionRanged)
	Tick(w, step)

	for i := 0; i < 64 && countTagged(w, tags.Projectile) > 0; i++ {
		Tick(w, step)
	}
	assert.Equal(t, 0, countTagged(w, tags.Projectile))
	assert.Equal(t, 4, health.Current)
}

func TestProjectileExpiresAfterLifetime(t *testing.T) {
	w := newTestWorld(t)
	def := walkerDef()
	def.Ranged.HoverTime = 0
	def.Ranged.Lifetime = 0.5
	def.Ranged.Speed = 1
	agent := standingAt(w, 100, def)

	QueueAction(agent, cfg.ActionRanged)
	Tick(w, step) // launches on its first update

	for i := 0; i < 7; i++ {
		Tick(w, step)
	}
	assert.Equal(t, 1, countTagged(w, tags.Projectile))
	Tick(w, step)
	assert.Equal(t, 0, countTagged(w, tags.Projectile))
}

func TestAttacksSkipOwnerAndMaskedLayers(t *testing.T) {
	w := newTestWorld(t)
	owner := factory.CreateEnemy(w, 200, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	bystander := factory.CreateEnemy(w, 210, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	friendly := factory.CreateEnemy(w, 205, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	components.Health.Get(friendly).Layer = cfg.LayerPlayer

	hitbox := factory.CreateHitbox(w, owner, cfg.MeleeAttack{Prefab: "x", Damage: 1, Lifetime: 1}, cfg.ElementNone, cfg.DirectionRight)
	attack := components.Attack.Get(hitbox)
	attack.Follow = false
	obj := components.Object.Get(hitbox).Object
	obj.X, obj.Y = 195, floorTop-20
	obj.Update()

	UpdateClock(w, step)
	UpdateAttacks(w)

	assert.Equal(t, 5, components.Health.Get(owner).Current)
	assert.Equal(t, 5, components.Health.Get(friendly).Current)
	assert.Equal(t, 4, components.Health.Get(bystander).Current)
}

func TestAttacksSkipDescendantsOfOwner(t *testing.T) {
	w := newTestWorld(t)
	agent := standingAt(w, 100, walkerDef())
	// An enemy-like decoy spawned by the agent.
	decoy := factory.CreateEnemy(w, 100+cfg.Sim.AgentWidth+4, floorTop-cfg.Sim.EnemyHeight, dummyEnemy(5, cfg.ElementNone), 0)
	decoy.AddComponent(components.Parent)
	components.Parent.SetValue(decoy, components.ParentData{Parent: agent})

	QueueAction(agent, cfg.ActionMelee)
	Tick(w, step)

	assert.Equal(t, 5, components.Health.Get(decoy).Current)
}
