package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmineOuatt/othello-game/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := othello(); err != nil {
		log.Fatal().Err(err).Msg("othello exited with an error")
	}
}

func othello() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
