package systems

import (
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
)

// RequestMelee starts a melee attack if its cooldown has elapsed. A
// definition without a melee prefab uses up the cooldown but spawns nothing.
func RequestMelee(w donburi.World, e *donburi.Entry) bool {
	agent := components.Agent.Get(e)
	melee := agent.Definition.Melee
	now, dt := clockTime(w)
	if !due(now, agent.LastMeleeAt+melee.Cooldown, dt) {
		return false
	}
	agent.LastMeleeAt = now
	if melee.Prefab == "" {
		return false
	}

	factory.CreateHitbox(w, e, melee, agent.Definition.Element, agent.Facing)
	startAttack(w, e, agent, components.AttackMelee, now)
	return true
}

// RequestRanged fires a projectile if its cooldown has elapsed. A
// definition without a ranged prefab uses up the cooldown but spawns
// nothing.
func RequestRanged(w donburi.World, e *donburi.Entry) bool {
	agent := components.Agent.Get(e)
	ranged := agent.Definition.Ranged
	now, dt := clockTime(w)
	if !due(now, agent.LastRangedAt+ranged.Cooldown, dt) {
		return false
	}
	agent.LastRangedAt = now
	if ranged.Prefab == "" {
		return false
	}

	factory.CreateProjectile(w, e, ranged, agent.Definition.Element, agent.Facing)
	startAttack(w, e, agent, components.AttackProjectile, now)
	return true
}

func startAttack(w donburi.World, e *donburi.Entry, agent *components.AgentData, kind components.AttackKind, now float64) {
	agent.Attacking = true
	agent.AttackStartedAt = now
	emitAttackStarted(w, e, kind)
}

// UpdateAttacks moves, checks and expires every live hitbox and projectile.
func UpdateAttacks(w donburi.World) {
	clock := clockOf(w)
	if clock == nil {
		return
	}
	dt := clock.Delta

	var expired []*donburi.Entry
	tags.Attack.Each(w, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		var done bool
		switch attack.Kind {
		case components.AttackMelee:
			done = updateHitbox(w, e, attack, dt)
		case components.AttackProjectile:
			done = updateProjectile(w, e, attack, dt)
		}
		if done {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		removeEntity(w, e)
	}
}

// updateHitbox re-checks contact every tick; a hitbox can hit the same
// target repeatedly over its lifetime.
func updateHitbox(w donburi.World, e *donburi.Entry, attack *components.AttackData, dt float64) bool {
	followOwner(e, attack)
	for _, target := range eligibleTargets(e, attack) {
		ApplyDamage(w, target, attack.Kind, attack.Element, attack.Damage)
		attack.Hits++
	}
	attack.Remaining -= dt
	return attack.Remaining <= dt/2
}

// updateProjectile advances the hover then launch motion. The first eligible
// target touched takes the hit and ends the projectile.
func updateProjectile(w donburi.World, e *donburi.Entry, attack *components.AttackData, dt float64) bool {
	obj := components.Object.Get(e).Object

	switch attack.Phase {
	case components.ProjectileHovering:
		attack.VelocityX = 0
		followOwner(e, attack)
		attack.Elapsed += dt
	case components.ProjectileLaunched:
		obj.X += attack.VelocityX * cfg.Sim.UnitScale * dt
		obj.Update()
		attack.Remaining -= dt
	}

	if targets := eligibleTargets(e, attack); len(targets) > 0 {
		ApplyDamage(w, targets[0], attack.Kind, attack.Element, attack.Damage)
		attack.Hits++
		return true
	}

	if attack.Phase == components.ProjectileHovering && due(attack.Elapsed, attack.HoverDuration, dt) {
		attack.Phase = components.ProjectileLaunched
		attack.Follow = false
		attack.VelocityX = attack.Speed * attack.Facing
		attack.Remaining = attack.Lifetime
		return false
	}
	return attack.Phase == components.ProjectileLaunched && attack.Remaining <= dt/2
}

// followOwner keeps a following attack at its spawn point in front of the
// owner. It stops following once the owner is gone.
func followOwner(e *donburi.Entry, attack *components.AttackData) {
	if !attack.Follow {
		return
	}
	owner := attack.Owner
	if owner == nil || !owner.Valid() || !owner.HasComponent(components.Object) {
		attack.Follow = false
		return
	}
	obj := components.Object.Get(e).Object
	ownerObj := components.Object.Get(owner).Object
	obj.X, obj.Y = factory.PlaceInFront(ownerObj, attack.Facing, attack.OffsetX, attack.OffsetY, obj.W, obj.H)
	obj.Update()
}

// eligibleTargets lists the live targets overlapping e that attack may
// affect. The owner and anything it spawned are never eligible.
func eligibleTargets(e *donburi.Entry, attack *components.AttackData) []*donburi.Entry {
	obj := components.Object.Get(e).Object
	var targets []*donburi.Entry
	for _, other := range overlapping(obj, 0, 0, tags.ResolvTarget) {
		target, ok := other.Data.(*donburi.Entry)
		if !ok || target == nil || !target.Valid() || !target.HasComponent(components.Health) {
			continue
		}
		health := components.Health.Get(target)
		if health.Destroyed || !attack.HitMask.Has(health.Layer) {
			continue
		}
		if components.IsSelfOrDescendant(target, attack.Owner) {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}
