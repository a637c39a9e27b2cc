// Package game implements turn resolution for a hero facing waves of zombies.
package game

// Phase is which side may act.
type Phase int

const (
	// PhaseHeroTurn accepts one hero move or attack.
	PhaseHeroTurn Phase = iota
	// PhaseMobsTurn runs every living mob once, then hands back to the hero.
	PhaseMobsTurn
	// PhaseGameOver is entered when the hero dies.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHeroTurn:
		return "hero_turn"
	case PhaseMobsTurn:
		return "mobs_turn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
