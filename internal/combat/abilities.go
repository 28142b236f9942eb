package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/rpgcore/internal/gamedata"
	"github.com/samdwyer/rpgcore/internal/logging"
)

// Outcome describes the mutations a variant ability intends. Plan produces
// it without touching any combatant, so effects can be inspected or tested
// in isolation; Invoke applies it.
type Outcome struct {
	Ability       string // Ability display name
	TargetDamage  int    // HP removed from the target (fire boss burn)
	TargetHealing int    // HP restored to the target (sidekick support)
	UserHealing   int    // HP restored to the user (goblin deed)
	FreezesTarget bool   // Target's next action is skipped (ice boss)
	DamageBuffPct int    // Bonus percent on the user's next attack (orc deed)
	ArmsSummon    string // Variant ID armed for an external spawner (necromancer deed)
	Message       string // Human-readable description
}

// Dispatcher resolves variant abilities against the closed variant set held
// by the registry.
type Dispatcher struct {
	registry *gamedata.VariantRegistry
}

// NewDispatcher creates a dispatcher over the given variant registry.
func NewDispatcher(registry *gamedata.VariantRegistry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Plan computes the effect of the user's variant ability on the target
// without applying it. Villain deeds ignore the target; boss and sidekick
// abilities require one.
func (d *Dispatcher) Plan(user, target Combatant) (Outcome, error) {
	if !user.IsAlive() {
		return Outcome{}, fmt.Errorf("%s cannot act: %w", user.GetName(), ErrAlreadyDefeated)
	}

	def := d.registry.GetByID(user.VariantID())
	if def == nil {
		return Outcome{}, fmt.Errorf("%s: %w", user.GetName(), ErrNoAbility)
	}

	outcome := Outcome{
		Ability: def.Ability.Name,
		Message: fmt.Sprintf("%s uses %s!", user.GetName(), def.Ability.Name),
	}

	switch def.Role {
	case gamedata.RoleBoss:
		if target == nil {
			return Outcome{}, fmt.Errorf("%s requires a target: %w", def.Ability.Name, ErrInvalidTarget)
		}
		if !target.IsAlive() {
			return Outcome{}, fmt.Errorf("%s is not a valid target: %w", target.GetName(), ErrAlreadyDefeated)
		}
		switch def.Ability.Element {
		case gamedata.ElementFire:
			// Single immediate burn; sustained DOTs belong to the scheduler
			outcome.TargetDamage = user.GetBaseDamage() / 2
		case gamedata.ElementIce:
			outcome.FreezesTarget = true
		default:
			panic(fmt.Sprintf("combat: unhandled boss element %q", def.Ability.Element))
		}

	case gamedata.RoleVillain:
		// Deeds are table-driven from the variant definition; exactly one
		// effect field is set, enforced at registry load.
		outcome.UserHealing = def.Ability.SelfHeal
		outcome.DamageBuffPct = def.Ability.DamageBuffPct
		outcome.ArmsSummon = def.Ability.Summon

	case gamedata.RoleSidekick:
		if target == nil || target.GetFaction() != user.GetFaction() {
			return Outcome{}, fmt.Errorf("%s must target an ally: %w", def.Ability.Name, ErrInvalidTarget)
		}
		if !target.IsAlive() {
			return Outcome{}, fmt.Errorf("%s is not a valid target: %w", target.GetName(), ErrAlreadyDefeated)
		}
		outcome.TargetHealing = def.Ability.Heal

	default:
		panic(fmt.Sprintf("combat: unhandled role %q", def.Role))
	}

	return outcome, nil
}

// Invoke plans the user's variant ability and applies it. The returned
// Outcome carries actual amounts: damage and healing are clamped by the
// target's remaining and missing HP.
func (d *Dispatcher) Invoke(user, target Combatant) (Outcome, error) {
	outcome, err := d.Plan(user, target)
	if err != nil {
		return Outcome{}, err
	}

	if outcome.TargetDamage > 0 {
		outcome.TargetDamage = target.TakeDamage(outcome.TargetDamage)
	}
	if outcome.TargetHealing > 0 {
		outcome.TargetHealing = target.Heal(outcome.TargetHealing)
	}
	if outcome.UserHealing > 0 {
		outcome.UserHealing = user.Heal(outcome.UserHealing)
	}
	if outcome.FreezesTarget {
		target.SetFrozen(true)
	}
	if outcome.DamageBuffPct > 0 {
		user.AddDamageBuff(outcome.DamageBuffPct)
	}
	if outcome.ArmsSummon != "" {
		user.ArmSummon(outcome.ArmsSummon)
	}

	fields := logrus.Fields{
		"component": "ability",
		"user":      user.GetName(),
		"ability":   outcome.Ability,
	}
	if target != nil {
		fields["target"] = target.GetName()
	}
	logging.Log.WithFields(fields).Debug("Ability invoked")

	return outcome, nil
}
