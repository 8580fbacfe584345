package state

// GameState represents the current state of a match
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Finished returns true once the match has been decided
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateVictory
}
