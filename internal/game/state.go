// Package game provides the turn scheduler that sequences combat,
// progression, and ability dispatch for a single battle.
package game

// Phase represents the current phase of a battle.
type Phase int

const (
	// PhaseActive - both sides still have combatants standing
	PhaseActive Phase = iota
	// PhaseVictory - all foes defeated
	PhaseVictory
	// PhaseDefeat - all heroes defeated
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
