package game

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// BoardSize is the side length of the playing grid.
const BoardSize = 8

// CellState is the content of a single board cell.
type CellState int

const (
	Empty CellState = iota
	Black
	White
)

func (c CellState) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// mark returns the single-character board symbol for a cell.
func (c CellState) mark() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "."
	}
}

// Opponent returns the other disc color. Empty has no opponent.
func Opponent(side CellState) CellState {
	switch side {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

var (
	ErrOutOfRange  = errors.New("coordinates out of range")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoLegalMove = errors.New("no legal move")
)

// Direction is one of the eight unit vectors used for line scanning.
type Direction struct {
	DR int
	DC int
}

// Directions holds the eight scan directions, all unit vectors except (0,0).
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Square is a (row, column) board coordinate.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the coordinates lie on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Board owns the raw 8x8 grid. It knows nothing about legality or turns,
// only cell storage and line inspection.
type Board struct {
	cells [BoardSize][BoardSize]CellState
}

// NewBoard returns a board set up in the standard opening position:
// the center 2x2 block with White on the main diagonal.
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b.cells[mid-1][mid-1] = White
	b.cells[mid][mid] = White
	b.cells[mid-1][mid] = Black
	b.cells[mid][mid-1] = Black
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Get returns the cell state at (row, col), or ErrOutOfRange.
func (b *Board) Get(row, col int) (CellState, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return b.cells[row][col], nil
}

// Set writes the cell state at (row, col) unconditionally, failing only on
// out-of-range coordinates.
func (b *Board) Set(row, col int, s CellState) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	b.cells[row][col] = s
	return nil
}

// at is the unchecked accessor for callers that already validated bounds.
func (b *Board) at(sq Square) CellState {
	return b.cells[sq.Row][sq.Col]
}

// Count returns the number of cells holding s.
func (b *Board) Count(s CellState) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col] == s {
				count++
			}
		}
	}
	return count
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	return b.Count(Empty) == 0
}

// ScanLine yields the squares along d starting at the neighbor of sq and
// stopping at the board edge. The sequence is lazy and restartable; it does
// not judge sandwich validity.
func (b *Board) ScanLine(sq Square, d Direction) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for row, col := sq.Row+d.DR, sq.Col+d.DC; InBounds(row, col); row, col = row+d.DR, col+d.DC {
			if !yield(Square{Row: row, Col: col}) {
				return
			}
		}
	}
}

// String renders the board with row and column indices, one mark per cell.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, " %d ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			fmt.Fprintf(&sb, " %s ", b.cells[row][col].mark())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseBoard builds a board from an 8-line diagram of '.', 'B' and 'W'
// marks, with or without spaces between cells.
func ParseBoard(diagram string) (*Board, error) {
	b := &Board{}
	lines := strings.Split(strings.TrimSpace(diagram), "\n")
	if len(lines) != BoardSize {
		return nil, fmt.Errorf("expected %d rows, got %d", BoardSize, len(lines))
	}
	for row, line := range lines {
		marks := strings.Fields(line)
		if len(marks) == 1 && len(marks[0]) == BoardSize {
			parts := make([]string, 0, BoardSize)
			for _, r := range marks[0] {
				parts = append(parts, string(r))
			}
			marks = parts
		}
		if len(marks) != BoardSize {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", row, BoardSize, len(marks))
		}
		for col, mark := range marks {
			switch mark {
			case ".":
				b.cells[row][col] = Empty
			case "B":
				b.cells[row][col] = Black
			case "W":
				b.cells[row][col] = White
			default:
				return nil, fmt.Errorf("row %d col %d: unknown mark %q", row, col, mark)
			}
		}
	}
	return b, nil
}
