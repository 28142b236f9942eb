package combat

import "testing"

func TestGainExperienceLevelUp(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	c := newMockCombatant("Hero", 110, 10, 0)
	c.experience = 90

	// 90 + 20 = 110 >= threshold(1) = 100 -> level 2, 10 left over
	leveled := tracker.GainExperience(c, 20)

	if !leveled {
		t.Error("Expected a level up")
	}
	if c.GetLevel() != 2 {
		t.Errorf("Expected level 2, got %d", c.GetLevel())
	}
	if c.GetExperience() != 10 {
		t.Errorf("Expected 10 experience, got %d", c.GetExperience())
	}
}

func TestGainExperienceZeroIsNoOp(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	c := newMockCombatant("Hero", 110, 10, 0)
	c.experience = 42

	leveled := tracker.GainExperience(c, 0)

	if leveled {
		t.Error("Zero experience must not level up")
	}
	if c.GetLevel() != 1 || c.GetExperience() != 42 {
		t.Errorf("State changed: level %d, experience %d", c.GetLevel(), c.GetExperience())
	}
}

func TestGainExperienceNegativePanics(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	c := newMockCombatant("Hero", 110, 10, 0)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on negative experience amount")
		}
	}()
	tracker.GainExperience(c, -1)
}

func TestGainExperienceMultiLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GrowthFactor = 0 // Isolate the leveling loop from stat growth
	tracker := NewTracker(cfg)
	c := newMockCombatant("Hero", 110, 10, 0)

	// 350: -100 -> level 2 (250), -200 -> level 3 (50), 50 < 300 stops
	leveled := tracker.GainExperience(c, 350)

	if !leveled {
		t.Error("Expected level ups")
	}
	if c.GetLevel() != 3 {
		t.Errorf("Expected level 3, got %d", c.GetLevel())
	}
	if c.GetExperience() != 50 {
		t.Errorf("Expected 50 experience, got %d", c.GetExperience())
	}
}

func TestGainExperienceInvariant(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	c := newMockCombatant("Hero", 110, 10, 0)

	amounts := []int{0, 1, 99, 100, 101, 250, 1000, 7}
	levelBefore := c.GetLevel()

	for _, amount := range amounts {
		tracker.GainExperience(c, amount)

		if c.GetExperience() >= tracker.Threshold(c.GetLevel()) {
			t.Errorf("After +%d: experience %d >= threshold %d at level %d",
				amount, c.GetExperience(), tracker.Threshold(c.GetLevel()), c.GetLevel())
		}
		if c.GetLevel() < levelBefore {
			t.Errorf("Level decreased from %d to %d", levelBefore, c.GetLevel())
		}
		levelBefore = c.GetLevel()
	}
}

func TestGainExperienceStatGrowth(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	c := newMockCombatant("Hero", 110, 10, 0)

	tracker.GainExperience(c, 100)

	if c.GetLevel() != 2 {
		t.Fatalf("Expected level 2, got %d", c.GetLevel())
	}
	// 1.2x growth: 110 -> 132, 10 -> 12
	if c.GetMaxHP() != 132 {
		t.Errorf("Expected max HP 132, got %d", c.GetMaxHP())
	}
	if c.GetBaseDamage() != 12 {
		t.Errorf("Expected base damage 12, got %d", c.GetBaseDamage())
	}
}

func TestThreshold(t *testing.T) {
	tracker := NewTracker(DefaultConfig())

	tests := []struct {
		level    int
		expected int
	}{
		{1, 100},
		{2, 200},
		{5, 500},
		{40, 4000},
	}

	for _, tt := range tests {
		if got := tracker.Threshold(tt.level); got != tt.expected {
			t.Errorf("Threshold(%d) = %d, want %d", tt.level, got, tt.expected)
		}
	}
}
