package gamedata

// =============================================================================
// VARIANT SYSTEM DESIGN
// =============================================================================
//
// Overview:
// ---------
// Every non-generic combatant belongs to exactly one variant from a closed
// set, defined in variants.json and loaded at startup. A variant fixes the
// combatant's role, base stats, and the single role-specific ability it can
// invoke. The set is closed: the registry rejects unknown roles and malformed
// ability blocks at load time, and the dispatcher in internal/combat matches
// exhaustively over roles, so adding a variant is a localized, checked change.
//
// Roles:
// ------
// 1. boss - uses a special ability keyed by element:
//    - fire: immediate burn for 50% of the boss's base damage
//    - ice: freezes the target; the turn scheduler skips its next action
//
// 2. villain - performs an evil deed, table-driven per variant:
//    - selfHeal: restores the villain's own HP
//    - damageBuffPct: percent bonus to the villain's next attack
//    - summon: arms a reinforcement flag consumed by an external spawner,
//      naming the variant ID to spawn
//
// 3. sidekick - uses a support ability on a designated ally:
//    - heal: flat HP restored to the ally
//
// JSON Schema:
// ------------
// {
//   "id": "orc",
//   "name": "Orc",
//   "role": "villain",
//   "glyph": "o",
//   "color": "#FF0000",
//   "hp": 40,
//   "damage": 7,
//   "xpReward": 60,
//   "spawnWeight": 30,
//   "ability": { "name": "Blood Frenzy", "damageBuffPct": 20 }
// }
//
// Exactly one effect field must be set inside "ability" for villains and
// sidekicks; bosses must name an element. Validate enforces this.

// RoleKind identifies the role a variant belongs to.
type RoleKind string

const (
	RoleBoss     RoleKind = "boss"
	RoleVillain  RoleKind = "villain"
	RoleSidekick RoleKind = "sidekick"
)

// Element keys a boss special ability.
type Element string

const (
	ElementNone Element = ""
	ElementFire Element = "fire"
	ElementIce  Element = "ice"
)

// AbilityDef describes a variant's role-specific ability.
// Which fields are meaningful depends on the owning variant's role.
type AbilityDef struct {
	Name          string  `json:"name"`
	Element       Element `json:"element,omitempty"`       // boss: fire or ice
	SelfHeal      int     `json:"selfHeal,omitempty"`      // villain: HP restored to self
	DamageBuffPct int     `json:"damageBuffPct,omitempty"` // villain: bonus percent on next attack
	Summon        string  `json:"summon,omitempty"`        // villain: variant ID to arm for summoning
	Heal          int     `json:"heal,omitempty"`          // sidekick: HP restored to ally
}

// VariantDef defines a combatant variant loaded from JSON.
type VariantDef struct {
	ID          string     `json:"id"`          // Unique identifier (e.g., "fire_boss")
	Name        string     `json:"name"`        // Display name (e.g., "Fire Boss")
	Role        RoleKind   `json:"role"`        // boss, villain, or sidekick
	Glyph       string     `json:"glyph"`       // Single character for rendering
	Color       string     `json:"color"`       // Hex color code (e.g., "#FF4500")
	HP          int        `json:"hp"`          // Base hit points
	Damage      int        `json:"damage"`      // Base attack power
	XPReward    int        `json:"xpReward"`    // Experience awarded to whoever defeats it
	SpawnWeight int        `json:"spawnWeight"` // Relative spawn frequency (villains only)
	Ability     AbilityDef `json:"ability"`     // Role-specific ability
}

// GlyphRune returns the glyph as a rune for rendering.
func (v *VariantDef) GlyphRune() rune {
	if len(v.Glyph) == 0 {
		return '?'
	}
	return rune(v.Glyph[0])
}

// VariantsFile represents the structure of variants.json.
type VariantsFile struct {
	Variants []VariantDef `json:"variants"`
}

// LoadVariants loads variant definitions from the embedded variants.json file.
func LoadVariants() ([]VariantDef, error) {
	file, err := Load[VariantsFile]("variants.json")
	if err != nil {
		return nil, err
	}
	return file.Variants, nil
}
