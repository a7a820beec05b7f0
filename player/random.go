package player

import (
	"golang.org/x/exp/rand"

	"github.com/AmineOuatt/othello-game/game"
)

// Random plays a uniformly random legal move. Useful as a baseline opponent
// and for exercising the engine in tests.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player. The same seed replays the same move
// sequence.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) FindMove(gs *game.GameState) (game.Move, error) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}
	return moves[r.rng.Intn(len(moves))], nil
}
