package systems

import (
	"math"

	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems/factory"
	"github.com/yohamta/donburi"
)

// Matchup is an ordered (attacker, defender) element pair.
type Matchup struct {
	Attack cfg.Element
	Defend cfg.Element
}

// DamageTable maps element matchups to damage multipliers. Pairs that are
// not listed deal normal damage.
type DamageTable map[Matchup]float64

// DefaultDamageTable returns the built-in matchups.
func DefaultDamageTable() DamageTable {
	return DamageTable{
		{Attack: cfg.ElementFire, Defend: cfg.ElementFire}: 0,
		{Attack: cfg.ElementFire, Defend: cfg.ElementIce}:  2,
	}
}

// Damage is the table used by ResolveDamage. Replace or extend it to add
// matchups.
var Damage = DefaultDamageTable()

// Multiplier returns the scale applied to damage from attack on defend.
func (t DamageTable) Multiplier(attack, defend cfg.Element) float64 {
	if attack == cfg.ElementNone || defend == cfg.ElementNone {
		return 1
	}
	if m, ok := t[Matchup{Attack: attack, Defend: defend}]; ok {
		return m
	}
	return 1
}

// Resolve returns the damage actually applied for a raw hit. Halves round
// to even.
func (t DamageTable) Resolve(attack, defend cfg.Element, raw int) int {
	if raw <= 0 {
		return 0
	}
	applied := int(math.RoundToEven(float64(raw) * t.Multiplier(attack, defend)))
	if applied < 0 {
		return 0
	}
	return applied
}

// ResolveDamage resolves a hit against the global Damage table.
func ResolveDamage(attack, defend cfg.Element, raw int) int {
	return Damage.Resolve(attack, defend, raw)
}

// ApplyDamage resolves a hit on target and subtracts it from its health.
// Zero applied damage leaves the target untouched; a positive hit that
// brings health to zero or below marks it destroyed. It returns the amount
// applied.
func ApplyDamage(w donburi.World, target *donburi.Entry, kind components.AttackKind, element cfg.Element, raw int) int {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return 0
	}
	health := components.Health.Get(target)
	if health.Destroyed {
		return 0
	}

	applied := ResolveDamage(element, health.Element, raw)
	if applied <= 0 {
		return 0
	}

	health.Current -= applied
	if health.Current <= 0 {
		health.Destroyed = true
	}

	components.TargetHitEvent.Publish(w, components.TargetHit{
		Target:  target,
		Attack:  kind,
		Applied: applied,
	})
	return applied
}

// RemoveDestroyedTargets takes every destroyed target out of the world and
// announces it.
func RemoveDestroyedTargets(w donburi.World) {
	var destroyed []*donburi.Entry
	components.Health.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Destroyed {
			destroyed = append(destroyed, e)
		}
	})

	for _, e := range destroyed {
		event := components.TargetDestroyed{
			Target:  e.Entity(),
			Element: components.Health.Get(e).Element,
		}
		if e.HasComponent(components.Enemy) {
			event.Enemy = components.Enemy.Get(e).Definition
		}
		components.TargetDestroyedEvent.Publish(w, event)
		removeEntity(w, e)
	}
}

func removeEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	factory.RemoveObject(w, e)
	w.Remove(e.Entity())
}
