// Package game provides the session state machine and turn loop.
package game

// State represents the current game state. The only transitions are
// MainMenu -> Playing (new game or load) and Playing -> GameOver (player
// death); nothing leaves GameOver.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
