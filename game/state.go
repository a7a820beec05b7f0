package game

import "fmt"

// GameState is the full state of a game in progress: the board, the side to
// move, the consecutive-pass counter and the terminal flag. Play and Pass
// return fresh copies, so a state handed to a searcher can never leak
// mutations back into the real game.
type GameState struct {
	Board  *Board
	Turn   CellState
	Passes int
	Over   bool
}

// NewGameState returns a game at the standard opening position with Black
// to move.
func NewGameState() *GameState {
	return &GameState{
		Board: NewBoard(),
		Turn:  Black,
	}
}

// Copy returns an independent copy of the state.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:  gs.Board.Copy(),
		Turn:   gs.Turn,
		Passes: gs.Passes,
		Over:   gs.Over,
	}
}

// LegalMoves returns the legal moves for the side to move, in row-major
// order.
func (gs *GameState) LegalMoves() []Move {
	return LegalMoves(gs.Board, gs.Turn)
}

// Play applies m for the side to move and returns the resulting state with
// the turn advanced and the pass counter reset. The receiver is not
// modified; an illegal move returns ErrIllegalMove and no new state.
func (gs *GameState) Play(m Move) (*GameState, error) {
	if gs.Over {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	next := gs.Copy()
	if err := ApplyMove(next.Board, next.Turn, m); err != nil {
		return nil, err
	}
	next.Turn = Opponent(next.Turn)
	next.Passes = 0
	next.refreshTerminal()
	return next, nil
}

// Pass forfeits the turn for a side with no legal move and returns the
// resulting state. Passing while a legal move exists is an error.
func (gs *GameState) Pass() (*GameState, error) {
	if gs.Over {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if HasAnyMove(gs.Board, gs.Turn) {
		return nil, fmt.Errorf("%w: %s must move, not pass", ErrIllegalMove, gs.Turn)
	}
	next := gs.Copy()
	next.Turn = Opponent(next.Turn)
	next.Passes++
	next.refreshTerminal()
	return next, nil
}

// refreshTerminal marks the game over after two consecutive passes, a full
// board, or when neither side can move.
func (gs *GameState) refreshTerminal() {
	if gs.Passes >= 2 || gs.Board.Full() {
		gs.Over = true
		return
	}
	if !HasAnyMove(gs.Board, Black) && !HasAnyMove(gs.Board, White) {
		gs.Over = true
	}
}

// IsTerminal reports whether the game is over.
func (gs *GameState) IsTerminal() bool {
	return gs.Over
}

// Score returns the current disc counts for Black and White.
func (gs *GameState) Score() (black, white int) {
	return gs.Board.Count(Black), gs.Board.Count(White)
}

// Winner returns the side with the strictly greater disc count, or Empty
// for a draw. Only meaningful once the game is terminal.
func (gs *GameState) Winner() CellState {
	black, white := gs.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
