package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/cmd/internal/analyze"
	"github.com/nelhage/isolation/cmd/internal/canonicalize"
	"github.com/nelhage/isolation/cmd/internal/history"
	"github.com/nelhage/isolation/cmd/internal/iei"
	"github.com/nelhage/isolation/cmd/internal/openings"
	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/cmd/internal/play"
	"github.com/nelhage/isolation/cmd/internal/selfplay"
	"github.com/nelhage/isolation/cmd/internal/serve"
)

var (
	configPath = flag.String("config", "", "config file (default: isolation/config.json in the XDG config dirs)")
	verbosity  = flag.Int("v", 0, "log verbosity: 0 info, 1 debug, 2 trace")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&history.Command{}, "")
	subcommands.Register(&openings.Command{}, "")
	subcommands.Register(&canonicalize.Command{}, "")
	subcommands.Register(&iei.Command{}, "engine")
	subcommands.Register(&serve.Command{}, "engine")

	flag.Parse()
	setupLogging(*verbosity)
	if err := opt.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

func setupLogging(v int) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch {
	case v <= 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case v == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}
