package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/worder/internal/cli"
	"github.com/robalobadob/worder/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: cfg.NoColor,
	})

	cmd := cli.NewRootCommand(cli.Options{
		Config: cfg,
		In:     os.Stdin,
		Out:    colorable.NewColorableStdout(),
		Color:  cli.ColorEnabled(cfg, os.Stdout),
	})
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("worder exited")
	}
}
