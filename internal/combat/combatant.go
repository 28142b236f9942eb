// Package combat provides attack resolution, experience progression, and
// variant-ability dispatch for rpgcore.
package combat

import "errors"

// Faction separates the two sides of an encounter.
type Faction int

const (
	FactionHeroes Faction = iota
	FactionFoes
)

// String returns the faction name.
func (f Faction) String() string {
	switch f {
	case FactionHeroes:
		return "heroes"
	case FactionFoes:
		return "foes"
	default:
		return "unknown"
	}
}

// Recoverable conditions reported to the caller. None of these mutate state.
var (
	// ErrAlreadyDefeated is returned when an attack or ability involves a
	// combatant whose HP is already 0.
	ErrAlreadyDefeated = errors.New("combatant already defeated")

	// ErrInvalidTarget is returned when an ability is aimed at an
	// ineligible target, such as a sidekick supporting an enemy.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrNoAbility is returned when ability dispatch is requested for a
	// combatant without a variant.
	ErrNoAbility = errors.New("combatant has no variant ability")
)

// Combatant is the interface for any entity that can participate in combat.
// Heroes, sidekicks, villains, and bosses all implement it.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool
	GetFaction() Faction
	VariantID() string // Empty for generic combatants without a variant

	// Stats
	GetHP() int
	GetMaxHP() int
	GetBaseDamage() int
	WeaponBonus() int // 0 when unarmed

	// Progression
	GetLevel() int
	GetExperience() int
	SetExperience(xp int)
	AdvanceLevel(growth float64) // Increments level and scales stats by growth

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken, clamped at 0 HP
	Heal(amount int) int       // Returns actual amount healed, capped at max HP

	// Ability-effect state, consumed by the turn scheduler and resolver
	IsFrozen() bool
	SetFrozen(frozen bool)
	AddDamageBuff(pct int)
	ConsumeDamageBuff() int // Returns and clears the pending buff percent
	ArmSummon(variantID string)
	ConsumeSummon() string // Returns and clears the armed summon variant ID
}
