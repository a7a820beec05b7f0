package game

import "fmt"

// capturesInDirection returns the run of opponent squares that playing sq
// for side would flip along d: consecutive opponent discs immediately
// bounded by a disc of side's own color. A run that hits an empty cell or
// the board edge captures nothing.
func capturesInDirection(b *Board, side CellState, sq Square, d Direction) []Square {
	opponent := Opponent(side)
	var run []Square
	for cell := range b.ScanLine(sq, d) {
		switch b.at(cell) {
		case opponent:
			run = append(run, cell)
		case side:
			return run
		default:
			return nil
		}
	}
	// Ran off the edge without a closing disc.
	return nil
}

// IsLegalMove reports whether side may play at m: the target cell is empty
// and at least one direction yields a proper sandwich.
func IsLegalMove(b *Board, side CellState, m Move) bool {
	if !InBounds(m.Row, m.Col) || b.at(m.Square()) != Empty {
		return false
	}
	for _, d := range Directions {
		if len(capturesInDirection(b, side, m.Square(), d)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for side in row-major order. The
// order is stable so downstream tie-breaking stays deterministic.
func LegalMoves(b *Board, side CellState) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			m := Move{Row: row, Col: col}
			if IsLegalMove(b, side, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasAnyMove reports whether side has at least one legal move.
func HasAnyMove(b *Board, side CellState) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if IsLegalMove(b, side, Move{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places side's disc at m and flips every sandwiched opponent run.
// On ErrIllegalMove the board is left untouched: legality is established
// before the first write, and captures only recolor existing discs.
func ApplyMove(b *Board, side CellState, m Move) error {
	if !IsLegalMove(b, side, m) {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, side, m)
	}
	b.cells[m.Row][m.Col] = side
	for _, d := range Directions {
		for _, cell := range capturesInDirection(b, side, m.Square(), d) {
			b.cells[cell.Row][cell.Col] = side
		}
	}
	return nil
}
