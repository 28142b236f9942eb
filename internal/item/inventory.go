package item

import (
	"errors"
	"fmt"
)

// ErrInventoryFull is returned when adding to an inventory at capacity.
var ErrInventoryFull = errors.New("inventory full")

// Holder is anything that can hold an inventory entry: a weapon, armor
// piece, or consumable.
type Holder interface {
	ItemID() string
	ItemName() string
}

// ItemID returns the item's unique instance identifier.
func (i Item) ItemID() string { return i.ID }

// ItemName returns the item's display name.
func (i Item) ItemName() string { return i.Name }

// Inventory manages a bounded collection of items and the currently
// equipped weapon and armor.
type Inventory struct {
	maxSize        int
	items          []Holder
	equippedWeapon *Weapon
	equippedArmor  *Armor
}

// DefaultMaxSize is the inventory capacity used when none is specified.
const DefaultMaxSize = 10

// NewInventory creates an empty inventory with the given capacity.
// A non-positive capacity falls back to DefaultMaxSize.
func NewInventory(maxSize int) *Inventory {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Inventory{
		maxSize: maxSize,
		items:   []Holder{},
	}
}

// Add places an item into the inventory.
func (inv *Inventory) Add(h Holder) error {
	if len(inv.items) >= inv.maxSize {
		return fmt.Errorf("cannot add %s: %w", h.ItemName(), ErrInventoryFull)
	}
	inv.items = append(inv.items, h)
	return nil
}

// Remove takes an item out of the inventory by instance ID.
// Returns false if the item is not held.
func (inv *Inventory) Remove(id string) bool {
	for i, h := range inv.items {
		if h.ItemID() == id {
			if inv.equippedWeapon != nil && inv.equippedWeapon.ID == id {
				inv.equippedWeapon = nil
			}
			if inv.equippedArmor != nil && inv.equippedArmor.ID == id {
				inv.equippedArmor = nil
			}
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// holds reports whether an item with the given instance ID is in the
// inventory.
func (inv *Inventory) holds(id string) bool {
	for _, h := range inv.items {
		if h.ItemID() == id {
			return true
		}
	}
	return false
}

// EquipWeapon equips a held weapon. Returns false if the weapon is not in
// the inventory.
func (inv *Inventory) EquipWeapon(w *Weapon) bool {
	if w == nil || !inv.holds(w.ID) {
		return false
	}
	inv.equippedWeapon = w
	return true
}

// EquipArmor equips a held armor piece. Returns false if the armor is not
// in the inventory.
func (inv *Inventory) EquipArmor(a *Armor) bool {
	if a == nil || !inv.holds(a.ID) {
		return false
	}
	inv.equippedArmor = a
	return true
}

// EquippedWeapon returns the currently equipped weapon, or nil.
func (inv *Inventory) EquippedWeapon() *Weapon { return inv.equippedWeapon }

// EquippedArmor returns the currently equipped armor, or nil.
func (inv *Inventory) EquippedArmor() *Armor { return inv.equippedArmor }

// UseConsumable removes a held consumable and returns it so the caller can
// apply its effect. Returns nil if the item is not held or not a consumable.
func (inv *Inventory) UseConsumable(id string) *Consumable {
	for _, h := range inv.items {
		c, ok := h.(*Consumable)
		if !ok || c.ID != id {
			continue
		}
		inv.Remove(id)
		return c
	}
	return nil
}

// Items returns the held items in insertion order.
func (inv *Inventory) Items() []Holder {
	out := make([]Holder, len(inv.items))
	copy(out, inv.items)
	return out
}

// Count returns the number of held items.
func (inv *Inventory) Count() int { return len(inv.items) }

// MaxSize returns the inventory capacity.
func (inv *Inventory) MaxSize() int { return inv.maxSize }
