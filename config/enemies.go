package config

// EnemyDefinition is the immutable stat block of an enemy kind.
type EnemyDefinition struct {
	ID          string
	DisplayName string
	Element     Element
	MaxHealth   int
	MoveSpeed   float64
	CanFly      bool

	// Carried for enemy attacks; agents have no health pool in this core.
	ContactDamage  int
	AttackCooldown float64
}

// Enemies is the catalog of enemy kinds keyed by id.
var Enemies = map[string]*EnemyDefinition{
	"goblimon": {
		ID:             "goblimon",
		DisplayName:    "Goblimon",
		Element:        ElementNone,
		MaxHealth:      5,
		MoveSpeed:      1.5,
		ContactDamage:  1,
		AttackCooldown: 1,
	},
	"meramon": {
		ID:             "meramon",
		DisplayName:    "Meramon",
		Element:        ElementFire,
		MaxHealth:      6,
		MoveSpeed:      2,
		ContactDamage:  1,
		AttackCooldown: 1,
	},
	"frigimon": {
		ID:             "frigimon",
		DisplayName:    "Frigimon",
		Element:        ElementIce,
		MaxHealth:      8,
		MoveSpeed:      1,
		ContactDamage:  1,
		AttackCooldown: 1.2,
	},
	"demidevimon": {
		ID:             "demidevimon",
		DisplayName:    "DemiDevimon",
		Element:        ElementDark,
		MaxHealth:      3,
		MoveSpeed:      2.5,
		CanFly:         true,
		ContactDamage:  1,
		AttackCooldown: 0.8,
	},
}
