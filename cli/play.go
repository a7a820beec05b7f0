package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AmineOuatt/othello-game/engine"
	"github.com/AmineOuatt/othello-game/game"
	"github.com/AmineOuatt/othello-game/player"
)

// Play builds the `othello play` command: an interactive game on the
// terminal, human vs machine by default.
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game on the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	cmd.Flags().IntP("difficulty", "d", 0, "AI difficulty (1-5, overrides config)")
	cmd.Flags().Bool("white", false, "Play as White (Black moves first)")
	cmd.Flags().Bool("pvp", false, "Two human players, no AI")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	difficulty, _ := cmd.Flags().GetInt("difficulty")
	if difficulty == 0 {
		difficulty = cfg.Difficulty
	}
	asWhite, _ := cmd.Flags().GetBool("white")
	pvp, _ := cmd.Flags().GetBool("pvp")

	var black, white player.Player
	switch {
	case pvp:
		black = player.NewHuman("Black", os.Stdin, os.Stdout)
		white = player.NewHuman("White", os.Stdin, os.Stdout)
	case asWhite:
		black = player.NewAgent(difficulty)
		white = player.NewHuman("White", os.Stdin, os.Stdout)
	default:
		black = player.NewHuman("Black", os.Stdin, os.Stdout)
		white = player.NewAgent(difficulty)
	}

	fmt.Printf("Black: %s, White: %s\n", black.Name(), white.Name())
	e := engine.NewLocal(black, white, engine.WithObserver(printState))
	winner, err := e.Run()
	if err != nil {
		return err
	}

	blackCount, whiteCount := e.State.Score()
	fmt.Printf("Final score - Black: %d, White: %d\n", blackCount, whiteCount)
	fmt.Println(resultText(winner))
	return nil
}

// printState renders the board and score before each turn.
func printState(gs *game.GameState) {
	fmt.Println()
	fmt.Print(gs.Board)
	black, white := gs.Score()
	fmt.Printf("Score - Black: %d, White: %d\n", black, white)
	if !gs.IsTerminal() {
		fmt.Printf("%s to move.\n", gs.Turn)
	}
}

func resultText(winner game.CellState) string {
	if winner == game.Empty {
		return "It's a draw!"
	}
	return fmt.Sprintf("%s wins!", winner)
}
