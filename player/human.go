package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AmineOuatt/othello-game/game"
)

// Human reads moves from an input stream as "row col" pairs. Malformed or
// illegal input is rejected with a message and re-prompted; the game state
// is never touched until a legal move is returned.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) FindMove(gs *game.GameState) (game.Move, error) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}
	fmt.Fprintf(h.out, "Legal moves: %v\n", moves)

	for {
		fmt.Fprint(h.out, "Enter your move (row col), e.g. '3 4': ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Move{}, fmt.Errorf("reading move: %w", err)
			}
			return game.Move{}, fmt.Errorf("reading move: %w", io.EOF)
		}

		move, err := parseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "Invalid input: %v. Please try again.\n", err)
			continue
		}
		if !game.IsLegalMove(gs.Board, gs.Turn, move) {
			fmt.Fprintf(h.out, "Illegal move %s. Please choose from: %v\n", move, moves)
			continue
		}
		return move, nil
	}
}

// parseMove parses a "row col" pair of integers.
func parseMove(input string) (game.Move, error) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		return game.Move{}, fmt.Errorf("expected two numbers separated by space")
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("row %q is not a number", parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("column %q is not a number", parts[1])
	}
	return game.Move{Row: row, Col: col}, nil
}
