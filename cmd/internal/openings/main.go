package openings

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
	"github.com/nelhage/isolation/symmetry"
)

type Command struct {
	board opt.Board
	seed  uint64
	depth int
	n     int
}

func (*Command) Name() string     { return "openings" }
func (*Command) Synopsis() string { return "Generate a set of opening positions" }
func (*Command) Usage() string {
	return `openings [flags]

Print distinct random positions, one per line, suitable for
selfplay -openings. Positions that are reflections of one another
count as the same opening.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	flags.IntVar(&c.depth, "depth", 2, "generate openings to what depth")
	flags.IntVar(&c.n, "n", 100, "generate how many openings")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board, err := c.board.Config()
	if err != nil {
		log.Error().Err(err).Msg("-size")
		return subcommands.ExitUsageError
	}
	positions, err := Generate(board, c.depth, c.n, c.seed)
	if err != nil {
		log.Error().Err(err).Msg("generate")
		return subcommands.ExitFailure
	}
	write(os.Stdout, positions)
	return subcommands.ExitSuccess
}

// Generate plays depth random plies from an empty board until it has n
// positions that are not reflections of each other. Openings where the
// game is already over are skipped.
func Generate(board isolation.Config, depth, n int, seed uint64) ([]*isolation.Position, error) {
	r := rand.New(rand.NewSource(seed))
	init := isolation.New(board)
	var positions []*isolation.Position
	seen := make(map[string]struct{})

	for tries := 0; len(positions) < n; tries++ {
		if tries > 100*n {
			return positions, fmt.Errorf("found only %d distinct openings at depth %d", len(positions), depth)
		}
		pos, ok := generate(r, init, depth)
		if !ok {
			continue
		}
		key, err := symmetry.Key(pos)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		positions = append(positions, pos)
	}
	return positions, nil
}

func generate(r *rand.Rand, pos *isolation.Position, depth int) (*isolation.Position, bool) {
	for d := 0; d < depth; d++ {
		moves := pos.Actions()
		if len(moves) == 0 {
			return nil, false
		}
		next, err := pos.Move(moves[r.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		pos = next
	}
	if over, _ := pos.GameOver(); over {
		return nil, false
	}
	return pos, true
}

func write(out io.Writer, positions []*isolation.Position) {
	for _, pos := range positions {
		fmt.Fprintln(out, notation.FormatPosition(pos))
	}
}
