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

// CreateEnergyPickup spawns a collectible that grants amount energy.
func CreateEnergyPickup(w donburi.World, x, y float64, amount int) *donburi.Entry {
	return createPickup(w, x, y, components.PickupData{
		Kind:   components.PickupEnergy,
		Amount: amount,
	})
}

// CreateUnlockPickup spawns a collectible that adds def to the roster.
func CreateUnlockPickup(w donburi.World, x, y float64, def *cfg.CharacterDefinition) *donburi.Entry {
	if def == nil {
		log.Printf("[pickup] unlock at (%.0f, %.0f) has no definition, not spawned", x, y)
		return nil
	}
	return createPickup(w, x, y, components.PickupData{
		Kind:   components.PickupUnlock,
		Unlock: def,
	})
}

func createPickup(w donburi.World, x, y float64, data components.PickupData) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(w)

	size := cfg.Sim.PickupSize
	obj := resolv.NewObject(x, y, size, size, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Pickup.SetValue(pickup, data)
	return pickup
}
