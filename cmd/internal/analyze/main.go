package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/cli"
	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

type Command struct {
	quiet bool

	ply       int
	all       bool
	variation string

	timeLimit time.Duration

	eval    bool
	explain bool
	verify  bool
	opt     opt.Agent

	out io.Writer
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position or a game record" }
func (*Command) Usage() string {
	return `analyze [options] FILE
analyze [options] ROWS PLY

Evaluate a position, given either as a game record file or as a
position string such as "..x/.1./2.. 3".

By default evaluates the final position of a record; use -ply to select
a different position, and -variation to play additional moves prior to
analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.IntVar(&c.ply, "ply", -1, "analyze the position after this many plies of the record")
	flags.BoolVar(&c.all, "all", false, "analyze every position in the record")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves after the given position")
	flags.DurationVar(&c.timeLimit, "limit", 0, "time limit for the search (0 for none)")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.BoolVar(&c.verify, "verify", false, "check the result against an unpruned minimax search")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == nil {
		c.out = os.Stdout
	}
	positions, err := c.positions(flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitUsageError
	}
	for _, p := range positions {
		if err := c.analyze(ctx, p); err != nil {
			log.Error().Err(err).Msg("analyze")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *Command) positions(args []string) ([]*isolation.Position, error) {
	var out []*isolation.Position
	switch len(args) {
	case 1:
		rec, err := notation.ParseFile(args[0])
		if err != nil {
			return nil, err
		}
		p, err := rec.InitialPosition()
		if err != nil {
			return nil, err
		}
		ms, err := notation.ParseMoves(p.Config(), strings.Join(rec.Moves, " "))
		if err != nil {
			return nil, err
		}
		if c.ply > len(ms) {
			return nil, fmt.Errorf("-ply %d: record has %d plies", c.ply, len(ms))
		}
		if c.all {
			out = append(out, p)
		}
		for i, m := range ms {
			if !c.all && i == c.ply {
				break
			}
			if p, err = p.Move(m); err != nil {
				return nil, fmt.Errorf("ply %d: %w", i+1, err)
			}
			if c.all {
				out = append(out, p)
			}
		}
		if !c.all {
			out = append(out, p)
		}
	case 2:
		p, err := notation.ParsePosition(strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	default:
		return nil, fmt.Errorf("expected a record file or a position")
	}

	if c.variation != "" {
		last := out[len(out)-1]
		ms, err := notation.ParseMoves(last.Config(), c.variation)
		if err != nil {
			return nil, fmt.Errorf("-variation: %w", err)
		}
		last, err = notation.Replay(last, ms)
		if err != nil {
			return nil, fmt.Errorf("-variation: %w", err)
		}
		out[len(out)-1] = last
	}
	return out, nil
}

func (c *Command) analyze(ctx context.Context, p *isolation.Position) error {
	s := ai.Adapt(p)
	me := p.ToMove()
	cfg := c.opt.BuildConfig(p.Config())
	if !c.quiet {
		cli.RenderBoard(nil, c.out, p)
		if c.explain {
			ai.ExplainScore(c.out, s, me)
		}
	}
	if over, winner := p.GameOver(); over {
		fmt.Fprintf(c.out, "game over: %s wins\n\n", winner)
		return nil
	}
	if c.eval {
		fmt.Fprintf(c.out, " %s=%s\n", cfg.Heuristic, ai.Score(ai.Evaluate(cfg.Heuristic, s, me)))
		return nil
	}

	ag := ai.NewAgent(me, cfg)
	a, err := match.Turn(ctx, ag, s, c.timeLimit)
	if err != nil {
		return err
	}
	st, actx := ag.Stats(), ag.Context()
	fmt.Fprintf(c.out, "AI analysis:\n")
	fmt.Fprintf(c.out, " action=%s value=%s opening=%t\n",
		notation.FormatMove(p.Config(), a), actx.LastValue, actx.Opening)
	fmt.Fprintf(c.out, " depth=%d visited=%d evaluated=%d terminal=%d cutoffs=%d time=%s\n",
		st.Depth, st.Visited, st.Evaluated, st.Terminal, st.Cutoffs, st.Elapsed)
	fmt.Fprintf(c.out, "[Position \"%s\"]\n", notation.FormatPosition(p))

	if c.verify && !actx.Opening {
		ref, refv := ai.Minimax(s, me, ag.Config().Depth, cfg.Heuristic)
		fmt.Fprintf(c.out, " minimax: action=%s value=%s\n",
			notation.FormatMove(p.Config(), ref), ai.Score(refv))
		if ref != a || ai.Score(refv) != actx.LastValue {
			return fmt.Errorf("alpha-beta chose %s (%s), minimax chose %s (%s)",
				notation.FormatMove(p.Config(), a), actx.LastValue,
				notation.FormatMove(p.Config(), ref), ai.Score(refv))
		}
	}
	fmt.Fprintln(c.out)
	return nil
}
