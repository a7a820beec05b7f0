package player

import (
	"fmt"

	"github.com/AmineOuatt/othello-game/game"
	"github.com/AmineOuatt/othello-game/searcher"
)

// Agent plays moves chosen by a minimax searcher.
type Agent struct {
	name   string
	search *searcher.Minimax
}

// NewAgent returns an agent searching at the depth that matches difficulty.
func NewAgent(difficulty int, options ...searcher.Option) *Agent {
	depth := searcher.DepthForDifficulty(difficulty)
	return &Agent{
		name:   fmt.Sprintf("minimax(depth=%d)", depth),
		search: searcher.NewMinimax(depth, options...),
	}
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) FindMove(gs *game.GameState) (game.Move, error) {
	return a.search.FindBestMove(gs)
}

// SearchMetrics returns the counters of the agent's most recent search.
func (a *Agent) SearchMetrics() searcher.SearchMetric {
	return a.search.Metrics()
}
