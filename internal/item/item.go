// Package item provides weapons, armor, consumables, and the inventories
// that hold them. Combat logic consumes these only through narrow
// capabilities (a weapon's damage bonus, a consumable's effect); it never
// assumes it owns an inventory, which may be shared across systems.
package item

import "github.com/google/uuid"

// Item is the common state shared by everything an inventory can hold.
type Item struct {
	ID          string // Unique instance identifier
	Name        string
	Description string
}

// newItem creates the shared item state with a fresh instance ID.
func newItem(name, description string) Item {
	return Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
}

// Weapon is an equippable item that adds to its wielder's attack power.
type Weapon struct {
	Item
	DamageBonus int // Non-negative; added to the wielder's base damage
}

// NewWeapon creates a weapon with the given damage bonus.
// A negative bonus is clamped to zero.
func NewWeapon(name, description string, damageBonus int) *Weapon {
	if damageBonus < 0 {
		damageBonus = 0
	}
	return &Weapon{
		Item:        newItem(name, description),
		DamageBonus: damageBonus,
	}
}

// Armor is an equippable item that provides defense.
type Armor struct {
	Item
	Defense int
}

// NewArmor creates an armor piece with the given defense value.
func NewArmor(name, description string, defense int) *Armor {
	if defense < 0 {
		defense = 0
	}
	return &Armor{
		Item:    newItem(name, description),
		Defense: defense,
	}
}

// EffectKind names what a consumable does when used.
type EffectKind string

const (
	EffectHeal    EffectKind = "heal"
	EffectFortify EffectKind = "fortify"
)

// Consumable is a single-use item with a named effect. The inventory does
// not apply effects itself; the holder interprets them.
type Consumable struct {
	Item
	Effect EffectKind
	Value  int
}

// NewConsumable creates a consumable with the given effect and magnitude.
func NewConsumable(name, description string, effect EffectKind, value int) *Consumable {
	return &Consumable{
		Item:   newItem(name, description),
		Effect: effect,
		Value:  value,
	}
}
