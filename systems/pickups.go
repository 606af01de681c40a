package systems

import (
	"github.com/automoto/digimorph/components"
	"github.com/automoto/digimorph/tags"
	"github.com/yohamta/donburi"
)

// UpdatePickups hands every pickup an agent touches to that agent and
// removes it. Energy goes through the ledger; unlocks extend the roster.
func UpdatePickups(w donburi.World) {
	var collected []*donburi.Entry
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		for _, other := range overlapping(obj, 0, 0, tags.ResolvAgent) {
			agent, ok := other.Data.(*donburi.Entry)
			if !ok || agent == nil || !agent.Valid() || agent.HasComponent(tags.Disabled) {
				continue
			}
			collect(w, agent, components.Pickup.Get(e))
			collected = append(collected, e)
			return
		}
	})

	for _, e := range collected {
		removeEntity(w, e)
	}
}

func collect(w donburi.World, agent *donburi.Entry, pickup *components.PickupData) {
	switch pickup.Kind {
	case components.PickupEnergy:
		AddEnergy(w, agent, pickup.Amount)
	case components.PickupUnlock:
		UnlockCharacter(agent, pickup.Unlock)
	}
}
