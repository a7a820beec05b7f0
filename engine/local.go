package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AmineOuatt/othello-game/game"
	"github.com/AmineOuatt/othello-game/player"
)

// MaxTurns is a safety bound on the game loop. A game holds at most 60
// moves plus interleaved passes, so the bound is never reached in a
// correct game.
const MaxTurns = 200

// Observer is notified with the current state before every turn and once
// more when the game is over.
type Observer func(gs *game.GameState)

// Option configures an Engine.
type Option func(e *Engine)

// WithObserver registers a callback for state updates, e.g. board
// rendering in a CLI.
func WithObserver(observe Observer) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

// Engine drives a local game between two players until it is terminal. All
// rule decisions go through the game package; the engine only owns the
// turn/pass sequencing.
type Engine struct {
	ID      uuid.UUID
	State   *game.GameState
	black   player.Player
	white   player.Player
	observe Observer
}

// NewLocal returns an engine for a fresh game between black and white.
func NewLocal(black, white player.Player, options ...Option) *Engine {
	e := &Engine{
		ID:      uuid.New(),
		State:   game.NewGameState(),
		black:   black,
		white:   white,
		observe: func(*game.GameState) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is terminal and returns the
// winner (game.Empty for a draw). Player errors are fatal: with correct
// orchestration a player is only asked to move when a legal move exists.
func (e *Engine) Run() (game.CellState, error) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	logger.Info().
		Str("black", e.black.Name()).
		Str("white", e.white.Name()).
		Msg("game started")

	for turn := 1; !e.State.IsTerminal(); turn++ {
		if turn > MaxTurns {
			return game.Empty, fmt.Errorf("game exceeded %d turns", MaxTurns)
		}
		e.observe(e.State)

		side := e.State.Turn
		if !game.HasAnyMove(e.State.Board, side) {
			next, err := e.State.Pass()
			if err != nil {
				return game.Empty, err
			}
			logger.Debug().Int("turn", turn).Stringer("side", side).Msg("pass")
			e.State = next
			continue
		}

		current := e.black
		if side == game.White {
			current = e.white
		}
		move, err := current.FindMove(e.State)
		if err != nil {
			return game.Empty, fmt.Errorf("%s (%s): %w", current.Name(), side, err)
		}
		next, err := e.State.Play(move)
		if err != nil {
			return game.Empty, fmt.Errorf("%s (%s) played %s: %w", current.Name(), side, move, err)
		}
		logger.Debug().Int("turn", turn).Stringer("side", side).Stringer("move", move).Msg("move")
		e.State = next
	}

	e.observe(e.State)
	black, white := e.State.Score()
	winner := e.State.Winner()
	logger.Info().
		Int("black", black).
		Int("white", white).
		Stringer("winner", winner).
		Msg("game over")
	return winner, nil
}
