package components

import (
	"github.com/automoto/digimorph/config"
	"github.com/yohamta/donburi"
)

type PickupKind int

const (
	PickupEnergy PickupKind = iota
	PickupUnlock
)

type PickupData struct {
	Kind   PickupKind
	Amount int
	Unlock *config.CharacterDefinition
}

var Pickup = donburi.NewComponentType[PickupData]()
