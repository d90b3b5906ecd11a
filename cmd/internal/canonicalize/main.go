package canonicalize

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
	"github.com/nelhage/isolation/symmetry"
)

type Command struct{}

func (*Command) Name() string     { return "canonicalize" }
func (*Command) Synopsis() string { return "Canonicalize the symmetry of a game record" }
func (*Command) Usage() string {
	return `canonicalize FILE

Rewrite a game record into the reflection of it that sorts first.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}

	rec, err := notation.ParseFile(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("file", flag.Arg(0)).Msg("read")
		return subcommands.ExitFailure
	}
	if err := Canonicalize(rec); err != nil {
		log.Error().Err(err).Msg("canonicalize")
		return subcommands.ExitFailure
	}
	fmt.Print(rec.Render())
	return subcommands.ExitSuccess
}

// Canonicalize rewrites rec's moves in place.
func Canonicalize(rec *notation.Record) error {
	if rec.FindTag("Position") != "" {
		return errors.New("records with a Position tag cannot be canonicalized")
	}
	p, err := rec.InitialPosition()
	if err != nil {
		return err
	}
	ms, err := notation.ParseMoves(p.Config(), strings.Join(rec.Moves, " "))
	if err != nil {
		return err
	}
	cfg := isolation.Config{Width: p.Width(), Height: p.Height()}
	out, err := symmetry.Canonical(cfg, ms)
	if err != nil {
		return err
	}
	rec.Moves = nil
	rec.AddMoves(p.Config(), out)
	return nil
}
