package player

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AmineOuatt/othello-game/game"
)

func TestHumanFindMove(t *testing.T) {
	t.Run("accepts a legal move", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman("Black", strings.NewReader("2 3\n"), &out)

		move, err := h.FindMove(game.NewGameState())

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move)
		require.Contains(t, out.String(), "Legal moves")
	})

	t.Run("re-prompts until the input is usable", func(t *testing.T) {
		var out bytes.Buffer
		input := "garbage\n1\n1 2 3\nx y\n9 9\n0 0\n2 3\n"
		h := NewHuman("Black", strings.NewReader(input), &out)
		gs := game.NewGameState()
		before := gs.Copy()

		move, err := h.FindMove(gs)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move,
			"Malformed, out-of-range and illegal inputs should all be rejected")
		require.Equal(t, before, gs, "Bad input must never corrupt the game state")
		require.Contains(t, out.String(), "Invalid input")
		require.Contains(t, out.String(), "Illegal move")
	})

	t.Run("fails with ErrNoLegalMove when there is nothing to play", func(t *testing.T) {
		b, err := game.ParseBoard(`
			B . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
		`)
		require.NoError(t, err)
		gs := &game.GameState{Board: b, Turn: game.White}
		h := NewHuman("White", strings.NewReader(""), &bytes.Buffer{})

		_, err = h.FindMove(gs)

		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})

	t.Run("fails on exhausted input", func(t *testing.T) {
		h := NewHuman("Black", strings.NewReader(""), &bytes.Buffer{})

		_, err := h.FindMove(game.NewGameState())

		require.Error(t, err)
	})
}

func TestRandomFindMove(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		r := NewRandom(1)
		gs := game.NewGameState()

		move, err := r.FindMove(gs)

		require.NoError(t, err)
		require.True(t, game.IsLegalMove(gs.Board, gs.Turn, move))
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		gs := game.NewGameState()
		first, err := NewRandom(42).FindMove(gs)
		require.NoError(t, err)
		second, err := NewRandom(42).FindMove(gs)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("fails with ErrNoLegalMove", func(t *testing.T) {
		gs := &game.GameState{Board: &game.Board{}, Turn: game.Black}

		_, err := NewRandom(1).FindMove(gs)

		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}

func TestAgentFindMove(t *testing.T) {
	a := NewAgent(1)
	gs := game.NewGameState()

	move, err := a.FindMove(gs)

	require.NoError(t, err)
	require.True(t, game.IsLegalMove(gs.Board, gs.Turn, move))
	require.Contains(t, a.Name(), "depth=2", "Difficulty 1 should search two plies")
}
