package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AmineOuatt/othello-game/config"
)

// Root builds the othello command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "othello",
		Short: "Play Othello (Reversi) against a minimax opponent",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("debug").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().Bool("debug", false, "Show Debug Information")
	root.PersistentFlags().String("config", "", "Path to a YAML config file")

	root.AddCommand(Play())
	root.AddCommand(Selfplay())

	return root
}

// loadConfig resolves the configuration for a command run and applies its
// log level unless --debug already forced one.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg = config.MustLoad(path)
	}
	if !cmd.Flag("debug").Changed {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(level)
		}
	}
	return cfg
}
