package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpgcore/internal/combat"
	"github.com/samdwyer/rpgcore/internal/entity"
	"github.com/samdwyer/rpgcore/internal/gamedata"
	"github.com/samdwyer/rpgcore/internal/logging"
	"github.com/samdwyer/rpgcore/internal/telemetry"
)

// Battle sequences one encounter between two rosters. It owns turn order,
// consumes the frozen and summon flags that abilities set, and feeds
// experience to the tracker when a foe falls. All mutation of a combatant
// happens within a single RunRound call; there is no concurrency here.
type Battle struct {
	Heroes []*entity.Character
	Foes   []*entity.Character
	Phase  Phase
	Round  int      // Completed rounds
	Log    []string // Messages from the most recent round

	cfg        Config
	resolver   *combat.Resolver
	dispatcher *combat.Dispatcher
	tracker    *combat.Tracker
	registry   *gamedata.VariantRegistry
	rng        *rand.Rand
	ended      bool
}

// NewBattle creates a battle between the given rosters and emits the
// combat.start span.
func NewBattle(ctx context.Context, cfg Config, registry *gamedata.VariantRegistry, heroes, foes []*entity.Character) *Battle {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.AbilityCadence <= 0 {
		cfg.AbilityCadence = DefaultConfig().AbilityCadence
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.Int("hero_count", len(heroes)),
		attribute.Int("foe_count", len(foes)),
		attribute.Int64("seed", seed),
	)
	span.End()

	return &Battle{
		Heroes:     heroes,
		Foes:       foes,
		Phase:      PhaseActive,
		cfg:        cfg,
		resolver:   combat.NewResolver(cfg.Combat, rng),
		dispatcher: combat.NewDispatcher(registry),
		tracker:    combat.NewTracker(cfg.Combat),
		registry:   registry,
		rng:        rng,
	}
}

// Over reports whether the battle has reached a terminal phase.
func (b *Battle) Over() bool {
	return b.Phase != PhaseActive
}

// RunRound executes one full round: every standing hero acts, then every
// standing foe. It returns a copy of the messages generated during the
// round; the Log field itself is reused between rounds.
func (b *Battle) RunRound(ctx context.Context) []string {
	if b.Over() {
		return nil
	}

	b.Round++
	b.Log = b.Log[:0]

	for _, actor := range append(append([]*entity.Character{}, b.Heroes...), b.Foes...) {
		if b.checkEnd(ctx) {
			break
		}
		if !actor.IsAlive() {
			continue
		}

		if actor.IsFrozen() {
			// The scheduler, not the dispatcher, clears the flag.
			actor.SetFrozen(false)
			b.say("%s is frozen solid and loses the turn!", actor.Name)
			continue
		}

		b.act(ctx, actor)
	}

	b.spawnSummons()
	b.checkEnd(ctx)
	return append([]string(nil), b.Log...)
}

// act executes a single combatant's action: its variant ability on cadence
// rounds, a plain attack otherwise.
func (b *Battle) act(ctx context.Context, actor *entity.Character) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("actor", actor.Name),
		attribute.Int("round", b.Round),
	)
	defer span.End()

	if actor.Def != nil && b.Round%b.cfg.AbilityCadence == 0 {
		target := b.abilityTarget(actor)
		outcome, err := b.dispatcher.Invoke(actor, target)
		if err != nil {
			span.SetAttributes(attribute.String("error", err.Error()))
			b.say("%s falters: %v", actor.Name, err)
			return
		}
		span.SetAttributes(attribute.String("ability", outcome.Ability))
		b.reportOutcome(actor, target, outcome)
		if target != nil && !target.IsAlive() {
			b.awardDefeat(actor, target)
		}
		return
	}

	defender := lowestHP(b.opponents(actor))
	if defender == nil {
		return
	}
	result, err := b.resolver.Attack(actor, defender)
	if err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		return
	}
	span.SetAttributes(
		attribute.String("target", defender.Name),
		attribute.Int("damage", result.Damage),
		attribute.Bool("critical", result.Critical),
	)

	if result.Critical {
		b.say("%s lands a critical hit on %s for %d damage!", actor.Name, defender.Name, result.Damage)
	} else {
		b.say("%s hits %s for %d damage.", actor.Name, defender.Name, result.Damage)
	}
	if !defender.IsAlive() {
		b.awardDefeat(actor, defender)
	}
}

// abilityTarget picks the target a variant ability wants: the weakest
// opponent for bosses, the weakest ally for sidekicks, none for villains.
func (b *Battle) abilityTarget(actor *entity.Character) *entity.Character {
	if actor.Def == nil {
		return nil
	}
	switch actor.Def.Role {
	case gamedata.RoleBoss:
		return lowestHP(b.opponents(actor))
	case gamedata.RoleSidekick:
		return lowestHP(b.allies(actor))
	default:
		return nil
	}
}

// reportOutcome turns an ability outcome into round messages.
func (b *Battle) reportOutcome(actor, target *entity.Character, outcome combat.Outcome) {
	b.say("%s", outcome.Message)
	if outcome.TargetDamage > 0 && target != nil {
		b.say("%s is seared for %d damage!", target.Name, outcome.TargetDamage)
	}
	if outcome.FreezesTarget && target != nil {
		b.say("%s is encased in ice!", target.Name)
	}
	if outcome.TargetHealing > 0 && target != nil {
		b.say("%s recovers %d HP.", target.Name, outcome.TargetHealing)
	}
	if outcome.UserHealing > 0 {
		b.say("%s recovers %d HP.", actor.Name, outcome.UserHealing)
	}
	if outcome.DamageBuffPct > 0 {
		b.say("%s seethes, next attack +%d%%!", actor.Name, outcome.DamageBuffPct)
	}
	if outcome.ArmsSummon != "" {
		b.say("%s begins a dark incantation...", actor.Name)
	}
}

// awardDefeat grants the victor the fallen combatant's experience reward.
func (b *Battle) awardDefeat(victor, fallen *entity.Character) {
	b.say("%s is defeated!", fallen.Name)
	if fallen.Def == nil || fallen.Def.XPReward <= 0 {
		return
	}
	reward := fallen.Def.XPReward
	leveled := b.tracker.GainExperience(victor, reward)
	b.say("%s gains %d experience.", victor.Name, reward)
	if leveled {
		b.say("%s reaches level %d!", victor.Name, victor.Level)
	}
}

// spawnSummons resolves armed summon flags at the end of the round,
// spawning reinforcements into the summoner's roster.
func (b *Battle) spawnSummons() {
	for _, c := range append(append([]*entity.Character{}, b.Heroes...), b.Foes...) {
		// A dead summoner keeps its armed flag; nothing spawns for it.
		if !c.IsAlive() {
			continue
		}
		id := c.ConsumeSummon()
		if id == "" {
			continue
		}
		def := b.registry.GetByID(id)
		if def == nil {
			logging.Log.WithFields(logrus.Fields{
				"component": "battle",
				"summoner":  c.Name,
				"variant":   id,
			}).Warn("Summon target missing from registry")
			continue
		}
		spawned := entity.NewFromVariant(def)
		if c.Faction == combat.FactionHeroes {
			b.Heroes = append(b.Heroes, spawned)
		} else {
			b.Foes = append(b.Foes, spawned)
		}
		b.say("%s raises a %s from the ground!", c.Name, spawned.Name)
	}
}

// checkEnd updates the phase when a side has fallen and emits combat.end
// once. Returns true if the battle is over.
func (b *Battle) checkEnd(ctx context.Context) bool {
	switch {
	case !anyAlive(b.Heroes):
		b.Phase = PhaseDefeat
	case !anyAlive(b.Foes):
		b.Phase = PhaseVictory
	default:
		return false
	}

	if !b.ended {
		b.ended = true
		b.say("The battle ends in %s.", b.Phase)

		tracer := telemetry.Tracer("game")
		_, span := tracer.Start(ctx, "combat.end")
		span.SetAttributes(
			attribute.String("outcome", b.Phase.String()),
			attribute.Int("rounds", b.Round),
			attribute.Int("hero_hp_remaining", totalHP(b.Heroes)),
		)
		span.End()

		logging.Log.WithFields(logrus.Fields{
			"component": "battle",
			"outcome":   b.Phase.String(),
			"rounds":    b.Round,
		}).Info("Battle over")
	}
	return true
}

// opponents returns the roster opposing the given combatant.
func (b *Battle) opponents(c *entity.Character) []*entity.Character {
	if c.Faction == combat.FactionHeroes {
		return b.Foes
	}
	return b.Heroes
}

// allies returns the roster the given combatant fights for.
func (b *Battle) allies(c *entity.Character) []*entity.Character {
	if c.Faction == combat.FactionHeroes {
		return b.Heroes
	}
	return b.Foes
}

// say appends a formatted message to the round log.
func (b *Battle) say(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}

// lowestHP returns the standing combatant with the least HP, or nil.
func lowestHP(roster []*entity.Character) *entity.Character {
	var lowest *entity.Character
	for _, c := range roster {
		if c.IsAlive() {
			if lowest == nil || c.GetHP() < lowest.GetHP() {
				lowest = c
			}
		}
	}
	return lowest
}

// anyAlive reports whether any combatant in the roster is standing.
func anyAlive(roster []*entity.Character) bool {
	for _, c := range roster {
		if c.IsAlive() {
			return true
		}
	}
	return false
}

// totalHP returns the sum of the roster's current HP.
func totalHP(roster []*entity.Character) int {
	total := 0
	for _, c := range roster {
		total += c.GetHP()
	}
	return total
}
