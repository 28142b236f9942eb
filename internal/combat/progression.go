package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/rpgcore/internal/logging"
)

// Tracker applies experience gains and performs leveling.
type Tracker struct {
	cfg Config
}

// NewTracker creates a progression tracker with the given tuning.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Threshold returns the experience required to advance past the given level.
func (t *Tracker) Threshold(level int) int {
	return level * t.cfg.ThresholdStep
}

// GainExperience adds experience to a combatant and levels it up as many
// times as the amount allows. Returns true if at least one level was gained.
//
// A zero amount is a legal no-op. A negative amount is a caller bug and
// panics rather than silently clamping. After the call the combatant's
// experience is always below the threshold for its current level.
func (t *Tracker) GainExperience(c Combatant, amount int) bool {
	if amount < 0 {
		panic(fmt.Sprintf("combat: negative experience amount %d for %s", amount, c.GetName()))
	}
	if amount == 0 {
		return false
	}

	c.SetExperience(c.GetExperience() + amount)

	leveled := false
	for c.GetExperience() >= t.Threshold(c.GetLevel()) {
		c.SetExperience(c.GetExperience() - t.Threshold(c.GetLevel()))
		c.AdvanceLevel(t.cfg.GrowthFactor)
		leveled = true
	}

	if leveled {
		logging.Log.WithFields(logrus.Fields{
			"component":  "progression",
			"name":       c.GetName(),
			"level":      c.GetLevel(),
			"experience": c.GetExperience(),
			"max_hp":     c.GetMaxHP(),
			"damage":     c.GetBaseDamage(),
		}).Info("Level up")
	}

	return leveled
}
