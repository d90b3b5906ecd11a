package iei

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/engine"
)

type Command struct {
	opt opt.Agent
}

func (*Command) Name() string     { return "iei" }
func (*Command) Synopsis() string { return "Run the engine over IEI on stdin/stdout" }
func (*Command) Usage() string {
	return `iei [flags]

Launch the engine in IEI mode, a UCI-like protocol suitable for being
driven by an external GUI or controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := engine.NewEngine(os.Stdin, os.Stdout)
	e.ConfigFactory = c.opt.BuildConfig
	if err := e.Run(ctx); err != nil {
		log.Error().Err(err).Msg("iei")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
