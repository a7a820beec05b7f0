package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmineOuatt/othello-game/engine"
	"github.com/AmineOuatt/othello-game/player"
	"github.com/AmineOuatt/othello-game/searcher"
)

// Selfplay builds the `othello selfplay` command: a series of agent vs
// agent games with per-game search statistics.
func Selfplay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Run agent vs agent games",
		Args:  cobra.NoArgs,
		RunE:  runSelfplay,
	}

	cmd.Flags().IntP("games", "n", 0, "Number of games to play (overrides config)")
	cmd.Flags().Int("black-difficulty", 3, "Difficulty of the Black agent (1-5)")
	cmd.Flags().Int("white-difficulty", 3, "Difficulty of the White agent (1-5)")

	return cmd
}

func runSelfplay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	games, _ := cmd.Flags().GetInt("games")
	if games == 0 {
		games = cfg.Games
	}
	blackDifficulty, _ := cmd.Flags().GetInt("black-difficulty")
	whiteDifficulty, _ := cmd.Flags().GetInt("white-difficulty")

	fmt.Printf("Black %s vs White %s, %d game(s)\n",
		depthText(blackDifficulty), depthText(whiteDifficulty), games)

	for i := 1; i <= games; i++ {
		black := player.NewAgent(blackDifficulty, searcher.WithMetrics())
		white := player.NewAgent(whiteDifficulty, searcher.WithMetrics())

		e := engine.NewLocal(black, white)
		winner, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}

		blackCount, whiteCount := e.State.Score()
		fmt.Printf("Game %d: %s (Black %d - White %d)\n", i, resultText(winner), blackCount, whiteCount)
		fmt.Printf("  last searches - black: %s, white: %s\n",
			metricText(black.SearchMetrics()), metricText(white.SearchMetrics()))
	}
	return nil
}

// depthText describes the depth an agent searches at for a difficulty
// setting.
func depthText(difficulty int) string {
	return fmt.Sprintf("difficulty %d (depth %d)", difficulty, searcher.DepthForDifficulty(difficulty))
}

func metricText(metric searcher.SearchMetric) string {
	return fmt.Sprintf("%d nodes, %d leaves, %d prunes in %s",
		metric.Nodes, metric.Leaves, metric.Prunes, metric.Duration.Round(time.Microsecond))
}
