package combat

import (
	"errors"
	"math/rand"
	"testing"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name        string
	hp, maxHP   int
	baseDamage  int
	weaponBonus int
	level       int
	experience  int
	faction     Faction
	variantID   string

	frozen   bool
	buffPct  int
	summonID string
}

func newMockCombatant(name string, hp, baseDamage, weaponBonus int) *mockCombatant {
	return &mockCombatant{
		name:        name,
		hp:          hp,
		maxHP:       hp,
		baseDamage:  baseDamage,
		weaponBonus: weaponBonus,
		level:       1,
	}
}

func (m *mockCombatant) GetName() string      { return m.name }
func (m *mockCombatant) IsAlive() bool        { return m.hp > 0 }
func (m *mockCombatant) GetFaction() Faction  { return m.faction }
func (m *mockCombatant) VariantID() string    { return m.variantID }
func (m *mockCombatant) GetHP() int           { return m.hp }
func (m *mockCombatant) GetMaxHP() int        { return m.maxHP }
func (m *mockCombatant) GetBaseDamage() int   { return m.baseDamage }
func (m *mockCombatant) WeaponBonus() int     { return m.weaponBonus }
func (m *mockCombatant) GetLevel() int        { return m.level }
func (m *mockCombatant) GetExperience() int   { return m.experience }
func (m *mockCombatant) SetExperience(xp int) { m.experience = xp }

func (m *mockCombatant) AdvanceLevel(growth float64) {
	m.level++
	if growth <= 0 {
		return
	}
	m.maxHP = int(float64(m.maxHP) * growth)
	m.hp = int(float64(m.hp) * growth)
	if m.hp > m.maxHP {
		m.hp = m.maxHP
	}
	m.baseDamage = int(float64(m.baseDamage) * growth)
}

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 || m.hp == 0 {
		return 0
	}
	actual := amount
	if m.hp+actual > m.maxHP {
		actual = m.maxHP - m.hp
	}
	m.hp += actual
	return actual
}

func (m *mockCombatant) IsFrozen() bool          { return m.frozen }
func (m *mockCombatant) SetFrozen(frozen bool)   { m.frozen = frozen }
func (m *mockCombatant) AddDamageBuff(pct int)   { m.buffPct += pct }
func (m *mockCombatant) ConsumeDamageBuff() int  { pct := m.buffPct; m.buffPct = 0; return pct }
func (m *mockCombatant) ArmSummon(id string)     { m.summonID = id }
func (m *mockCombatant) ConsumeSummon() string   { id := m.summonID; m.summonID = ""; return id }

var _ Combatant = (*mockCombatant)(nil)

// fixedConfig removes all randomness: no variance, no crits.
func fixedConfig() Config {
	cfg := DefaultConfig()
	cfg.VarianceMin = 1.0
	cfg.VarianceMax = 1.0
	cfg.CritChance = 0
	return cfg
}

func newTestResolver(cfg Config) *Resolver {
	return NewResolver(cfg, rand.New(rand.NewSource(12345)))
}

func TestAttackDamageWithinVariance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CritChance = 0 // Variance only

	// Power 10+5=15, multiplier in [0.9, 1.1] -> damage in 14..17
	for seed := int64(0); seed < 50; seed++ {
		resolver := NewResolver(cfg, rand.New(rand.NewSource(seed)))
		attacker := newMockCombatant("Hero", 110, 10, 5)
		defender := newMockCombatant("Goblin", 100, 5, 0)

		result, err := resolver.Attack(attacker, defender)
		if err != nil {
			t.Fatalf("Attack returned error: %v", err)
		}
		if result.Damage < 14 || result.Damage > 17 {
			t.Errorf("seed %d: damage %d outside [14, 17]", seed, result.Damage)
		}
		if defender.GetHP() != 100-result.Damage {
			t.Errorf("seed %d: defender HP %d, want %d", seed, defender.GetHP(), 100-result.Damage)
		}
		if result.Critical {
			t.Errorf("seed %d: critical hit with CritChance 0", seed)
		}
	}
}

func TestAttackCriticalDoublesDamage(t *testing.T) {
	cfg := fixedConfig()
	cfg.CritChance = 1.0 // Always crit

	resolver := newTestResolver(cfg)
	attacker := newMockCombatant("Hero", 110, 10, 5)
	defender := newMockCombatant("Orc", 100, 7, 0)

	result, err := resolver.Attack(attacker, defender)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if !result.Critical {
		t.Error("Expected a critical hit with CritChance 1.0")
	}
	if result.Damage != 30 {
		t.Errorf("Expected 30 damage (15 doubled), got %d", result.Damage)
	}
}

func TestAttackZeroPowerNeverCritical(t *testing.T) {
	cfg := fixedConfig()
	cfg.CritChance = 1.0

	resolver := newTestResolver(cfg)
	attacker := newMockCombatant("Pacifist", 10, 0, 0)
	defender := newMockCombatant("Goblin", 30, 5, 0)

	result, err := resolver.Attack(attacker, defender)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if result.Damage != 0 {
		t.Errorf("Expected 0 damage, got %d", result.Damage)
	}
	if result.Critical {
		t.Error("Zero-power attack must report Critical=false")
	}
	if defender.GetHP() != 30 {
		t.Errorf("Defender HP changed to %d on a zero-power attack", defender.GetHP())
	}
}

func TestAttackClampsAtZeroHP(t *testing.T) {
	resolver := newTestResolver(fixedConfig())
	attacker := newMockCombatant("Hero", 110, 100, 0)
	defender := newMockCombatant("Goblin", 30, 5, 0)

	result, err := resolver.Attack(attacker, defender)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if result.Damage != 30 {
		t.Errorf("Expected damage clamped to 30, got %d", result.Damage)
	}
	if defender.GetHP() != 0 {
		t.Errorf("Expected defender HP 0, got %d", defender.GetHP())
	}
	if defender.IsAlive() {
		t.Error("Defender should be defeated")
	}
}

func TestAttackDefeatedDefenderFails(t *testing.T) {
	resolver := newTestResolver(fixedConfig())
	attacker := newMockCombatant("Hero", 110, 10, 0)
	defender := newMockCombatant("Corpse", 30, 5, 0)
	defender.hp = 0

	_, err := resolver.Attack(attacker, defender)
	if !errors.Is(err, ErrAlreadyDefeated) {
		t.Errorf("Expected ErrAlreadyDefeated, got %v", err)
	}
	if defender.GetHP() != 0 {
		t.Errorf("Defeated defender HP changed to %d", defender.GetHP())
	}
}

func TestAttackByDefeatedAttackerFails(t *testing.T) {
	resolver := newTestResolver(fixedConfig())
	attacker := newMockCombatant("Fallen", 110, 10, 0)
	attacker.hp = 0
	defender := newMockCombatant("Goblin", 30, 5, 0)

	_, err := resolver.Attack(attacker, defender)
	if !errors.Is(err, ErrAlreadyDefeated) {
		t.Errorf("Expected ErrAlreadyDefeated, got %v", err)
	}
	if defender.GetHP() != 30 {
		t.Errorf("Defender HP changed to %d", defender.GetHP())
	}
}

func TestAttackConsumesDamageBuff(t *testing.T) {
	resolver := newTestResolver(fixedConfig())
	attacker := newMockCombatant("Orc", 40, 10, 5)
	defender := newMockCombatant("Hero", 200, 10, 0)

	attacker.AddDamageBuff(20)

	// Buffed: 15 + 15*20/100 = 18
	result, err := resolver.Attack(attacker, defender)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if result.Damage != 18 {
		t.Errorf("Expected buffed damage 18, got %d", result.Damage)
	}

	// Buff is spent; back to 15
	result, err = resolver.Attack(attacker, defender)
	if err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if result.Damage != 15 {
		t.Errorf("Expected unbuffed damage 15, got %d", result.Damage)
	}
}

func TestAttackSequenceKeepsHPInBounds(t *testing.T) {
	resolver := newTestResolver(DefaultConfig())
	attacker := newMockCombatant("Hero", 110, 10, 5)
	defender := newMockCombatant("Boss", 60, 9, 0)

	for defender.IsAlive() {
		result, err := resolver.Attack(attacker, defender)
		if err != nil {
			t.Fatalf("Attack returned error: %v", err)
		}
		if result.Damage < 0 {
			t.Fatalf("Negative damage %d", result.Damage)
		}
		if defender.GetHP() < 0 || defender.GetHP() > defender.GetMaxHP() {
			t.Fatalf("Defender HP %d outside [0, %d]", defender.GetHP(), defender.GetMaxHP())
		}
	}

	_, err := resolver.Attack(attacker, defender)
	if !errors.Is(err, ErrAlreadyDefeated) {
		t.Errorf("Expected ErrAlreadyDefeated after defeat, got %v", err)
	}
}
