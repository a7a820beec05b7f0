package player

import "github.com/AmineOuatt/othello-game/game"

// Player picks a move for the side to move in the given state. The engine
// only calls FindMove when at least one legal move exists; implementations
// must not mutate the state.
type Player interface {
	Name() string
	FindMove(gs *game.GameState) (game.Move, error)
}
