// Package entity provides the combatant data model: heroes, sidekicks,
// villains, and bosses.
package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/rpgcore/internal/combat"
	"github.com/samdwyer/rpgcore/internal/gamedata"
	"github.com/samdwyer/rpgcore/internal/item"
)

// Character is the mutable state of one combatant. It is mutated only by
// the combat resolver (HP), the progression tracker (level, experience),
// and the ability dispatcher (HP and effect flags). Weapon and inventory
// are held by reference and never owned: both may be shared or swapped by
// the surrounding game.
type Character struct {
	ID      string              // Unique instance identifier
	Name    string              // Display name, non-empty, fixed at creation
	Def     *gamedata.VariantDef // Variant definition, nil for generic heroes
	Symbol  rune                // Display glyph
	Faction combat.Faction

	HP, MaxHP  int
	BaseDamage int
	Level      int
	Experience int

	Weapon    *item.Weapon    // May be nil (unarmed)
	Inventory *item.Inventory // May be nil or shared across characters

	frozen        bool
	damageBuffPct int
	summonID      string
}

// New creates a generic character with no variant. The name must be
// non-empty; an empty name is a caller bug and panics.
func New(name string, maxHP, baseDamage int, faction combat.Faction) *Character {
	if name == "" {
		panic("entity: character name must be non-empty")
	}
	if maxHP <= 0 {
		panic(fmt.Sprintf("entity: max HP must be positive, got %d", maxHP))
	}
	if baseDamage < 0 {
		panic(fmt.Sprintf("entity: base damage must be non-negative, got %d", baseDamage))
	}
	return &Character{
		ID:         uuid.New().String(),
		Name:       name,
		Symbol:     '@',
		Faction:    faction,
		HP:         maxHP,
		MaxHP:      maxHP,
		BaseDamage: baseDamage,
		Level:      1,
		Experience: 0,
	}
}

// NewFromVariant creates a character from a variant definition. Bosses and
// villains join the foe faction, sidekicks the hero faction.
func NewFromVariant(def *gamedata.VariantDef) *Character {
	faction := combat.FactionFoes
	if def.Role == gamedata.RoleSidekick {
		faction = combat.FactionHeroes
	}
	c := New(def.Name, def.HP, def.Damage, faction)
	c.Def = def
	c.Symbol = def.GlyphRune()
	return c
}

// Equip points the character at a weapon. Passing nil unarms it.
func (c *Character) Equip(w *item.Weapon) {
	c.Weapon = w
}

// UseItem consumes a held item by instance ID and applies its effect:
// heal restores HP, fortify buffs the next attack. Returns false if the
// character holds no such consumable.
func (c *Character) UseItem(id string) bool {
	if c.Inventory == nil {
		return false
	}
	consumable := c.Inventory.UseConsumable(id)
	if consumable == nil {
		return false
	}
	switch consumable.Effect {
	case item.EffectHeal:
		c.Heal(consumable.Value)
	case item.EffectFortify:
		c.AddDamageBuff(consumable.Value)
	}
	return true
}

// Color returns the tcell color for rendering this character.
func (c *Character) Color() tcell.Color {
	if c.Def != nil {
		return c.Def.TCellColor()
	}
	if c.Faction == combat.FactionHeroes {
		return tcell.ColorYellow
	}
	return tcell.ColorWhite
}

// =============================================================================
// combat.Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining. A character at
// 0 HP is defeated, a terminal state.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetFaction returns which side the character fights for.
func (c *Character) GetFaction() combat.Faction { return c.Faction }

// VariantID returns the variant identifier, or empty for generic characters.
func (c *Character) VariantID() string {
	if c.Def == nil {
		return ""
	}
	return c.Def.ID
}

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// GetBaseDamage returns the character's innate attack power.
func (c *Character) GetBaseDamage() int { return c.BaseDamage }

// WeaponBonus returns the equipped weapon's damage bonus, or 0 when unarmed.
func (c *Character) WeaponBonus() int {
	if c.Weapon == nil {
		return 0
	}
	return c.Weapon.DamageBonus
}

// GetLevel returns the current level.
func (c *Character) GetLevel() int { return c.Level }

// GetExperience returns experience accumulated since the last level-up.
func (c *Character) GetExperience() int { return c.Experience }

// SetExperience sets the accumulated experience. Negative values are a
// caller bug and panic.
func (c *Character) SetExperience(xp int) {
	if xp < 0 {
		panic(fmt.Sprintf("entity: negative experience %d for %s", xp, c.Name))
	}
	c.Experience = xp
}

// AdvanceLevel increments the level and scales max HP, current HP, and base
// damage by the growth factor. Levels never decrease.
func (c *Character) AdvanceLevel(growth float64) {
	c.Level++
	if growth <= 0 {
		return
	}
	c.MaxHP = int(float64(c.MaxHP) * growth)
	c.HP = int(float64(c.HP) * growth)
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	c.BaseDamage = int(float64(c.BaseDamage) * growth)
}

// TakeDamage reduces HP and returns actual damage taken, clamped so HP
// never drops below 0.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed, capped at max HP.
// Defeated characters cannot be healed back.
func (c *Character) Heal(amount int) int {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	c.HP += actual
	return actual
}

// IsFrozen reports whether the character's next action should be skipped.
func (c *Character) IsFrozen() bool { return c.frozen }

// SetFrozen sets or clears the frozen flag. The turn scheduler, not the
// ability dispatcher, clears it when skipping the turn.
func (c *Character) SetFrozen(frozen bool) { c.frozen = frozen }

// AddDamageBuff queues a percent bonus for the next attack.
func (c *Character) AddDamageBuff(pct int) {
	if pct > 0 {
		c.damageBuffPct += pct
	}
}

// ConsumeDamageBuff returns and clears the pending damage buff percent.
func (c *Character) ConsumeDamageBuff() int {
	pct := c.damageBuffPct
	c.damageBuffPct = 0
	return pct
}

// ArmSummon flags the character as ready to summon the given variant.
func (c *Character) ArmSummon(variantID string) { c.summonID = variantID }

// ConsumeSummon returns and clears the armed summon variant ID.
func (c *Character) ConsumeSummon() string {
	id := c.summonID
	c.summonID = ""
	return id
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
