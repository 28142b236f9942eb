package game

import "github.com/samdwyer/rpgcore/internal/combat"

// Config holds battle configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means a time-based
	// seed will be used; fixed seeds give reproducible battles.
	Seed int64

	// AbilityCadence is how often variant abilities fire: every Nth round.
	AbilityCadence int

	// Combat is the numeric tuning passed to the resolver and tracker.
	Combat combat.Config
}

// DefaultConfig returns the baseline battle configuration.
func DefaultConfig() Config {
	return Config{
		AbilityCadence: 3,
		Combat:         combat.DefaultConfig(),
	}
}
