package combat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/rpgcore/internal/logging"
)

// Result contains the outcome of one resolved attack.
type Result struct {
	Damage   int  // Actual damage dealt, never more than the defender had
	Critical bool // True if the attack was a critical hit
}

// Resolver computes and applies attacks between combatants. The random
// source is injected so encounters are reproducible under a fixed seed.
type Resolver struct {
	cfg Config
	rng *rand.Rand
}

// NewResolver creates a resolver with the given tuning and random source.
func NewResolver(cfg Config, rng *rand.Rand) *Resolver {
	return &Resolver{cfg: cfg, rng: rng}
}

// Attack resolves a single attack from attacker to defender.
//
// Power is the attacker's base damage plus weapon bonus plus any pending
// damage buff, scaled by a uniform multiplier in [VarianceMin, VarianceMax]
// and doubled on a critical hit. Damage clamps at the defender's remaining
// HP; only the defender's HP is mutated.
//
// A defeated attacker or defender yields ErrAlreadyDefeated and no mutation.
// A zero-power attack always reports Critical=false so that repeated no-op
// swings stay deterministic.
func (r *Resolver) Attack(attacker, defender Combatant) (Result, error) {
	if !attacker.IsAlive() {
		return Result{}, fmt.Errorf("%s cannot attack: %w", attacker.GetName(), ErrAlreadyDefeated)
	}
	if !defender.IsAlive() {
		return Result{}, fmt.Errorf("%s is not a valid target: %w", defender.GetName(), ErrAlreadyDefeated)
	}

	base := attacker.GetBaseDamage()
	bonus := attacker.WeaponBonus()
	if base < 0 || bonus < 0 {
		panic(fmt.Sprintf("combat: negative attack power for %s (base=%d bonus=%d)", attacker.GetName(), base, bonus))
	}

	power := base + bonus
	if buff := attacker.ConsumeDamageBuff(); buff > 0 {
		power += power * buff / 100
	}

	multiplier := r.cfg.VarianceMin + r.rng.Float64()*(r.cfg.VarianceMax-r.cfg.VarianceMin)
	raw := int(math.Round(float64(power) * multiplier))

	critical := r.rng.Float64() < r.cfg.CritChance
	if power == 0 {
		critical = false
	}
	if critical {
		raw *= r.cfg.CritMultiplier
	}

	hpBefore := defender.GetHP()
	dealt := defender.TakeDamage(raw)

	logging.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.GetName(),
		"defender":  defender.GetName(),
		"power":     power,
		"damage":    dealt,
		"critical":  critical,
		"hp_before": hpBefore,
		"hp_after":  defender.GetHP(),
		"defeated":  !defender.IsAlive(),
	}).Debug("Attack resolved")

	return Result{Damage: dealt, Critical: critical}, nil
}
