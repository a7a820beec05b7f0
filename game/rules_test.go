package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesOpening(t *testing.T) {
	b := NewBoard()

	moves := LegalMoves(b, Black)

	require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, moves,
		"Black's opening moves should be the four classic replies in row-major order")
}

func TestIsLegalMove(t *testing.T) {
	b := NewBoard()

	t.Run("occupied cell", func(t *testing.T) {
		require.False(t, IsLegalMove(b, Black, Move{Row: 3, Col: 3}))
	})

	t.Run("out of range", func(t *testing.T) {
		require.False(t, IsLegalMove(b, Black, Move{Row: -1, Col: 3}))
		require.False(t, IsLegalMove(b, Black, Move{Row: 8, Col: 8}))
	})

	t.Run("no sandwiching direction", func(t *testing.T) {
		require.False(t, IsLegalMove(b, Black, Move{Row: 0, Col: 0}))
	})

	t.Run("run without a closing disc does not count", func(t *testing.T) {
		open, err := ParseBoard(`
			. W W W W W W W
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
		`)
		require.NoError(t, err)
		require.False(t, IsLegalMove(open, Black, Move{Row: 0, Col: 0}),
			"Opponent discs running off the edge are not a sandwich")
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("opening reply flips the sandwiched disc", func(t *testing.T) {
		b := NewBoard()

		err := ApplyMove(b, Black, Move{Row: 2, Col: 3})

		require.NoError(t, err)
		got, _ := b.Get(2, 3)
		require.Equal(t, Black, got, "The placed cell should hold the mover's disc")
		got, _ = b.Get(3, 3)
		require.Equal(t, Black, got, "The sandwiched white disc should flip")
		require.Equal(t, 4, b.Count(Black))
		require.Equal(t, 1, b.Count(White))
	})

	t.Run("illegal target leaves the board unchanged", func(t *testing.T) {
		b := NewBoard()
		before := b.Copy()

		for _, m := range []Move{{0, 0}, {3, 3}, {-1, 2}, {8, 0}} {
			err := ApplyMove(b, Black, m)
			require.ErrorIs(t, err, ErrIllegalMove, "Move %s should be illegal", m)
			require.Equal(t, before, b, "Board should be untouched after illegal move %s", m)
		}
	})

	t.Run("every legal move adds exactly one disc", func(t *testing.T) {
		b := NewBoard()
		for _, m := range LegalMoves(b, Black) {
			c := b.Copy()
			total := c.Count(Black) + c.Count(White)

			require.NoError(t, ApplyMove(c, Black, m))

			require.Equal(t, total+1, c.Count(Black)+c.Count(White),
				"Captures recolor discs, never add or remove them")
		}
	})

	t.Run("flips in multiple directions at once", func(t *testing.T) {
		b, err := ParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . B . B . . .
			. . . W W . . .
			. . B W . W W .
			. . . . W . . .
			. . . . B . . .
			. . . . . . . .
		`)
		require.NoError(t, err)

		require.NoError(t, ApplyMove(b, Black, Move{Row: 4, Col: 4}))

		// Placed disc plus the four sandwiched runs toward (2,2), (2,4),
		// (4,2) and (6,4). The eastward run ends on an empty cell and
		// must not flip.
		require.Equal(t, 9, b.Count(Black))
		got, _ := b.Get(4, 5)
		require.Equal(t, White, got, "Run closed by the board edge only should not flip")
	})
}

func TestHasAnyMoveMatchesLegalMoves(t *testing.T) {
	blocked, err := ParseBoard(`
		B . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . W
	`)
	require.NoError(t, err)

	boards := map[string]*Board{
		"opening": NewBoard(),
		"blocked": blocked,
		"empty":   {},
	}
	for name, b := range boards {
		for _, side := range []CellState{Black, White} {
			require.Equal(t, len(LegalMoves(b, side)) > 0, HasAnyMove(b, side),
				"%s/%s: HasAnyMove should agree with LegalMoves", name, side)
		}
	}
}

func TestNoMoveForEitherSide(t *testing.T) {
	// Isolated discs cannot be sandwiched, so neither side can play.
	b, err := ParseBoard(`
		B B . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . W
	`)
	require.NoError(t, err)

	require.False(t, HasAnyMove(b, Black))
	require.False(t, HasAnyMove(b, White))
}
