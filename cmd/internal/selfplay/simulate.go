package selfplay

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
)

// PlayerFactory builds a fresh player for one game. The returned
// function releases it.
type PlayerFactory func(side isolation.Player, board isolation.Config) (ai.Player, func(), error)

type Config struct {
	Games   int
	Verbose bool

	Initial []*isolation.Position

	P1, P2 PlayerFactory

	Swap    bool
	Threads int
	Cutoff  int
	Limit   time.Duration
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
		StuckWins  int
		TimeWins   int
		FoulWins   int
	}
	First, Second int
	Cutoff        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Cutoff
}

type gameSpec struct {
	opening *isolation.Position
	oi      int
	i       int
	// p1side is the side the -p1 player plays this game.
	p1side isolation.Player
}

type Result struct {
	spec gameSpec
	*match.Result
}

// P1Won reports whether the -p1 player won the game.
func (r *Result) P1Won() bool {
	return r.Decided() && r.Winner == r.spec.p1side
}

func (r *Result) add(st *Stats) {
	if !r.Decided() {
		st.Cutoff++
		return
	}
	if r.Winner == isolation.Player1 {
		st.First++
	} else {
		st.Second++
	}
	pst := &st.Players[0]
	if !r.P1Won() {
		pst = &st.Players[1]
	}
	pst.Wins++
	if r.Winner == isolation.Player1 {
		pst.FirstWins++
	} else {
		pst.SecondWins++
	}
	switch r.Reason {
	case match.Stuck:
		pst.StuckWins++
	case match.Timeout:
		pst.TimeWins++
	case match.Illegal:
		pst.FoulWins++
	}
}

func specs(c *Config) []gameSpec {
	var out []gameSpec
	for oi, pos := range c.Initial {
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			side := isolation.Player1
			if c.Swap && g%2 == 1 {
				side = isolation.Player2
			}
			out = append(out, gameSpec{opening: pos, oi: oi, i: g, p1side: side})
		}
	}
	return out
}

// Simulate plays every game, up to c.Threads at a time. The search
// inside each game stays single-threaded.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	all := specs(c)
	results := make([]Result, len(all))

	g, ctx := errgroup.WithContext(ctx)
	if c.Threads > 0 {
		g.SetLimit(c.Threads)
	}
	for i, spec := range all {
		i, spec := i, spec
		g.Go(func() error {
			r, err := playOne(ctx, c, spec)
			if err != nil {
				return err
			}
			if c.Verbose {
				log.Info().
					Int("opening", spec.oi).
					Int("game", spec.i).
					Int("plies", len(r.Moves)).
					Stringer("p1", spec.p1side).
					Stringer("winner", r.Winner).
					Stringer("reason", r.Reason).
					Msg("game")
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return st, err
	}
	for i := range results {
		results[i].add(&st)
	}
	st.Games = results
	return st, nil
}

func playOne(ctx context.Context, c *Config, spec gameSpec) (*Result, error) {
	board := *spec.opening.Config()
	first, done1, err := c.P1(spec.p1side, board)
	if err != nil {
		return nil, err
	}
	defer done1()
	second, done2, err := c.P2(spec.p1side.Opponent(), board)
	if err != nil {
		return nil, err
	}
	defer done2()

	var players [2]ai.Player
	players[spec.p1side] = first
	players[spec.p1side.Opponent()] = second

	res, err := match.Play(ctx, match.Config{
		Initial: spec.opening,
		Limit:   c.Limit,
		Cutoff:  c.Cutoff,
	}, players)
	if err != nil {
		return nil, err
	}
	return &Result{spec: spec, Result: res}, nil
}
