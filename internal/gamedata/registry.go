package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// VariantRegistry holds loaded variant definitions and provides lookup and
// spawning utilities. The registry is the single source of truth for the
// closed variant set: construction fails on any definition it cannot validate.
type VariantRegistry struct {
	byID          map[string]*VariantDef
	all           []VariantDef
	villainWeight int
}

// NewVariantRegistry creates a registry from loaded variant definitions,
// validating each one.
func NewVariantRegistry(variants []VariantDef) (*VariantRegistry, error) {
	registry := &VariantRegistry{
		byID: make(map[string]*VariantDef),
		all:  variants,
	}
	for i := range variants {
		v := &variants[i]
		if err := validateVariant(v); err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.ID, err)
		}
		if _, exists := registry.byID[v.ID]; exists {
			return nil, fmt.Errorf("variant %q: duplicate ID", v.ID)
		}
		registry.byID[v.ID] = v
		if v.Role == RoleVillain {
			registry.villainWeight += v.SpawnWeight
		}
	}
	// Summon targets must resolve within the registry
	for i := range variants {
		if target := variants[i].Ability.Summon; target != "" {
			if _, ok := registry.byID[target]; !ok {
				return nil, fmt.Errorf("variant %q: summon target %q not defined", variants[i].ID, target)
			}
		}
	}
	return registry, nil
}

// validateVariant checks that a definition fits its role.
func validateVariant(v *VariantDef) error {
	if v.ID == "" {
		return errors.New("missing ID")
	}
	if v.HP <= 0 {
		return fmt.Errorf("hp must be positive, got %d", v.HP)
	}
	if v.Damage < 0 {
		return fmt.Errorf("damage must be non-negative, got %d", v.Damage)
	}
	deeds := 0
	if v.Ability.SelfHeal > 0 {
		deeds++
	}
	if v.Ability.DamageBuffPct > 0 {
		deeds++
	}
	if v.Ability.Summon != "" {
		deeds++
	}
	switch v.Role {
	case RoleBoss:
		if v.Ability.Element != ElementFire && v.Ability.Element != ElementIce {
			return fmt.Errorf("boss requires element fire or ice, got %q", v.Ability.Element)
		}
	case RoleVillain:
		if deeds != 1 {
			return fmt.Errorf("villain requires exactly one deed effect, got %d", deeds)
		}
	case RoleSidekick:
		if v.Ability.Heal <= 0 {
			return errors.New("sidekick requires a positive heal amount")
		}
	default:
		return fmt.Errorf("unknown role %q", v.Role)
	}
	return nil
}

// LoadVariantRegistry loads and creates a registry from the embedded variants.json.
func LoadVariantRegistry() (*VariantRegistry, error) {
	variants, err := LoadVariants()
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, errors.New("no variants loaded from variants.json")
	}
	return NewVariantRegistry(variants)
}

// MustLoadVariantRegistry loads a registry, panicking on error.
func MustLoadVariantRegistry() *VariantRegistry {
	registry, err := LoadVariantRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the variant definition with the given ID, or nil if not found.
func (r *VariantRegistry) GetByID(id string) *VariantDef {
	return r.byID[id]
}

// All returns all variant definitions.
func (r *VariantRegistry) All() []VariantDef {
	return r.all
}

// Count returns the number of variants in the registry.
func (r *VariantRegistry) Count() int {
	return len(r.all)
}

// SpawnRandomVillain selects a random villain definition using weighted
// probability. Villains with higher spawnWeight are more likely.
func (r *VariantRegistry) SpawnRandomVillain(rng *rand.Rand) *VariantDef {
	if r.villainWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.villainWeight)

	cumulative := 0
	for i := range r.all {
		if r.all[i].Role != RoleVillain {
			continue
		}
		cumulative += r.all[i].SpawnWeight
		if roll < cumulative {
			return &r.all[i]
		}
	}

	// Fallback (shouldn't happen)
	return nil
}

// =============================================================================
// WeaponRegistry
// =============================================================================

// WeaponRegistry holds loaded weapon definitions and provides lookup utilities.
type WeaponRegistry struct {
	byID map[string]*WeaponDef
	all  []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) (*WeaponRegistry, error) {
	registry := &WeaponRegistry{
		byID: make(map[string]*WeaponDef),
		all:  weapons,
	}
	for i := range weapons {
		w := &weapons[i]
		if w.DamageBonus < 0 {
			return nil, fmt.Errorf("weapon %q: damage bonus must be non-negative, got %d", w.ID, w.DamageBonus)
		}
		if _, exists := registry.byID[w.ID]; exists {
			return nil, fmt.Errorf("weapon %q: duplicate ID", w.ID)
		}
		registry.byID[w.ID] = w
	}
	return registry, nil
}

// LoadWeaponRegistry loads and creates a registry from the embedded weapons.json.
func LoadWeaponRegistry() (*WeaponRegistry, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	return NewWeaponRegistry(weapons)
}

// MustLoadWeaponRegistry loads a registry, panicking on error.
func MustLoadWeaponRegistry() *WeaponRegistry {
	registry, err := LoadWeaponRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil if not found.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	return r.byID[id]
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.all
}

// Count returns the number of weapons in the registry.
func (r *WeaponRegistry) Count() int {
	return len(r.all)
}
