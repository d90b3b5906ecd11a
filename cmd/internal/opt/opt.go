package opt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/engine"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
)

// Agent is the flag bundle for configuring the search.
type Agent struct {
	Depth     int
	Heuristic ai.Heuristic
	Debug     int
}

func (o *Agent) AddFlags(flags *flag.FlagSet) {
	o.Depth = Defaults.Depth
	o.Heuristic = Defaults.Heuristic
	o.Debug = Defaults.Debug
	flags.IntVar(&o.Depth, "depth", o.Depth, "minimax depth (0 for the default)")
	flags.Var(&o.Heuristic, "heuristic", "evaluation heuristic: baseline or custom")
	flags.IntVar(&o.Debug, "debug", o.Debug, "search debug level")
}

// BuildConfig has the signature of engine.Engine's ConfigFactory; the
// search configuration does not depend on the board.
func (o *Agent) BuildConfig(*isolation.Config) ai.Config {
	return ai.Config{
		Depth:     o.Depth,
		Heuristic: o.Heuristic,
		Debug:     o.Debug,
	}
}

// Board is the -size flag.
type Board struct {
	Size string
}

func (b *Board) AddFlags(flags *flag.FlagSet) {
	b.Size = Defaults.Size
	if b.Size == "" {
		b.Size = fmt.Sprintf("%dx%d", isolation.DefaultWidth, isolation.DefaultHeight)
	}
	flags.StringVar(&b.Size, "size", b.Size, "board size, WxH")
}

func (b *Board) Config() (isolation.Config, error) {
	return notation.ParseSize(b.Size)
}

// Player builds a computer player from a spec:
//
//	agent[:DEPTH]  the search agent, with the -depth flag as default
//	greedy         the opening policy at every ply
//	random[:SEED]  uniformly random moves
//	iei:CMDLINE    an external engine, started for this player
//
// The returned function releases the player's resources.
func (o *Agent) Player(spec string, side isolation.Player, board isolation.Config) (ai.Player, func(), error) {
	noop := func() {}
	name, arg, _ := strings.Cut(spec, ":")
	switch name {
	case "agent":
		cfg := o.BuildConfig(nil)
		if arg != "" {
			d, err := strconv.Atoi(arg)
			if err != nil {
				return nil, nil, fmt.Errorf("player %q: bad depth: %w", spec, err)
			}
			cfg.Depth = d
		}
		return ai.NewAgent(side, cfg), noop, nil
	case "greedy":
		return ai.NewGreedy(side), noop, nil
	case "random":
		var seed uint64
		if arg != "" {
			var err error
			seed, err = strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("player %q: bad seed: %w", spec, err)
			}
		}
		return ai.NewRandom(seed), noop, nil
	case "iei":
		cl, err := engine.NewClient(strings.Fields(arg))
		if err != nil {
			return nil, nil, fmt.Errorf("player %q: %w", spec, err)
		}
		pl, err := cl.NewGame(board)
		if err != nil {
			cl.Close()
			return nil, nil, fmt.Errorf("player %q: %w", spec, err)
		}
		return pl, cl.Close, nil
	default:
		return nil, nil, fmt.Errorf("unparseable player: %q", spec)
	}
}

// HumanOr returns an interactive player for "human" and otherwise
// defers to Player.
func (o *Agent) HumanOr(spec string, side isolation.Player, board isolation.Config, human func() ai.Player) (ai.Player, func(), error) {
	if spec == "human" {
		return human(), func() {}, nil
	}
	return o.Player(spec, side, board)
}
