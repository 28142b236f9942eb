package combat

// Config holds the numeric tuning for combat and progression.
type Config struct {
	// VarianceMin and VarianceMax bound the uniform damage multiplier
	// applied to every attack.
	VarianceMin float64
	VarianceMax float64

	// CritChance is the probability of a critical hit in [0, 1].
	CritChance float64

	// CritMultiplier scales damage on a critical hit.
	CritMultiplier int

	// ThresholdStep sets the experience needed to leave a level:
	// threshold(level) = level * ThresholdStep.
	ThresholdStep int

	// GrowthFactor scales max HP and base damage on each level-up.
	GrowthFactor float64
}

// DefaultConfig returns the baseline tuning: ±10% variance, 10% crits that
// double damage, level×100 experience thresholds, 1.2× stat growth.
func DefaultConfig() Config {
	return Config{
		VarianceMin:    0.9,
		VarianceMax:    1.1,
		CritChance:     0.10,
		CritMultiplier: 2,
		ThresholdStep:  100,
		GrowthFactor:   1.2,
	}
}
