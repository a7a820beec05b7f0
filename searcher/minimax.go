package searcher

import (
	"github.com/AmineOuatt/othello-game/game"
)

// infinity bounds the alpha-beta window. Any reachable static evaluation is
// far inside it.
const infinity = 1 << 30

// Option configures a Minimax searcher.
type Option func(m *Minimax)

// WithEvaluationFn replaces the default static evaluator.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithMetrics makes the searcher collect per-search counters.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

// Minimax is a depth-bounded minimax searcher with alpha-beta pruning.
// Depth is the only search bound: no iterative deepening, no transposition
// table, no clock. Searches play on state copies, so the caller's state is
// never mutated.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  Collector
}

// NewMinimax returns a searcher that looks depth plies ahead.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateWeighted,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// Metrics returns the counters of the most recent search. Zero values
// unless the searcher was built WithMetrics.
func (m *Minimax) Metrics() SearchMetric {
	return m.metrics.Complete()
}

// FindBestMove searches the legal moves of the side to move and returns the
// one with the best minimax value. Ties go to the first candidate in
// row-major order, so repeated searches of the same state return the same
// move. Fails with ErrNoLegalMove when the side has nothing to play; the
// caller decides between passing and ending the game.
func (m *Minimax) FindBestMove(gs *game.GameState) (game.Move, error) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}
	m.metrics.Start(m.depth)

	side := gs.Turn
	best := moves[0]
	bestScore := -infinity
	alpha, beta := -infinity, infinity
	for _, move := range moves {
		next, err := gs.Play(move)
		if err != nil {
			return game.Move{}, err
		}
		score := m.search(next, side, m.depth-1, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = move
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, nil
}

// search returns the minimax value of gs from side's perspective with depth
// plies of budget left. A side to move with no legal move passes: the
// search recurses into the opponent at depth-1, the same convention for
// both players.
func (m *Minimax) search(gs *game.GameState, side game.CellState, depth, alpha, beta int) int {
	if depth == 0 || gs.IsTerminal() {
		m.metrics.AddLeaf()
		return m.evaluate(gs, side)
	}
	m.metrics.AddNode()

	moves := gs.LegalMoves()
	if len(moves) == 0 {
		next, err := gs.Pass()
		if err != nil {
			// Unreachable: no legal move and not terminal means pass is legal.
			panic(err)
		}
		return m.search(next, side, depth-1, alpha, beta)
	}

	maximizing := gs.Turn == side
	if maximizing {
		best := -infinity
		for _, move := range moves {
			next, _ := gs.Play(move)
			score := m.search(next, side, depth-1, alpha, beta)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				m.metrics.AddPrune()
				break
			}
		}
		return best
	}

	best := infinity
	for _, move := range moves {
		next, _ := gs.Play(move)
		score := m.search(next, side, depth-1, alpha, beta)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if alpha >= beta {
			m.metrics.AddPrune()
			break
		}
	}
	return best
}
