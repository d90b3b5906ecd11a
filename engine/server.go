// Package engine implements IEI, a line-oriented protocol in the
// style of UCI for driving an Isolation engine from another process.
package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

type Engine struct {
	// ConfigFactory builds the search configuration for a new game.
	ConfigFactory func(c *isolation.Config) ai.Config
	Name          string

	in  *bufio.Reader
	out io.Writer

	cfg    isolation.Config
	agents [2]*ai.Agent
	pos    *isolation.Position
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		Name: "isolation",
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "iei":
			fmt.Fprintf(e.out, "id name %s\n", e.Name)
			fmt.Fprintln(e.out, "ieiok")
		case "quit":
			return nil
		case "ieinewgame":
			e.pos = nil
			e.agents = [2]*ai.Agent{}
			e.cfg = isolation.Config{}
			if len(words) > 1 {
				e.cfg, err = notation.ParseSize(words[1])
				if err != nil {
					return fmt.Errorf("ieinewgame: %w", err)
				}
			}
		case "position":
			e.pos, err = parsePosition(e.cfg, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Error().Err(err).Msg("error in go")
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parsePosition(cfg isolation.Config, words []string) (*isolation.Position, error) {
	var pos *isolation.Position
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		pos = isolation.New(cfg)
	case "pos":
		// pos ROWS PLY
		if len(words) < 3 {
			return nil, errors.New("position pos: not enough arguments")
		}
		var err error
		pos, err = notation.ParsePosition(strings.Join(words[1:3], " "))
		if err != nil {
			return nil, fmt.Errorf("parse position: %w", err)
		}
		words = words[3:]
		want := isolation.New(cfg)
		if pos.Width() != want.Width() || pos.Height() != want.Height() {
			return nil, fmt.Errorf("position has wrong size: got %dx%d, configured for %dx%d",
				pos.Width(), pos.Height(), want.Width(), want.Height())
		}
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return pos, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		a, err := notation.ParseMove(pos.Config(), w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		pos, err = pos.Move(a)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return pos, nil
}

func (e *Engine) agent(pl isolation.Player) *ai.Agent {
	if e.agents[pl] == nil {
		var cfg ai.Config
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory(e.pos.Config())
		}
		e.agents[pl] = ai.NewAgent(pl, cfg)
	}
	return e.agents[pl]
}

// parseGo reads "go [movetime N] [p1time N] [p2time N] [p1inc N]
// [p2inc N]" and returns the budget for the player to move.
func parseGo(words []string, mover isolation.Player) (time.Duration, error) {
	var move time.Duration
	var tc TimeControl
	words = words[1:]
	if len(words)%2 != 0 {
		return 0, errors.New("go: expected <key> N pairs")
	}
	for i := 0; i < len(words); i += 2 {
		ms, err := strconv.ParseUint(words[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad ms: %v", words[i+1])
		}
		d := time.Duration(ms) * time.Millisecond
		switch words[i] {
		case "movetime":
			move = d
		case "p1time":
			tc.Time[isolation.Player1] = d
		case "p2time":
			tc.Time[isolation.Player2] = d
		case "p1inc":
			tc.Inc[isolation.Player1] = d
		case "p2inc":
			tc.Inc[isolation.Player2] = d
		default:
			return 0, fmt.Errorf("go: unknown limit %q", words[i])
		}
	}
	return calcBudget(move, tc.Time[mover], tc.Inc[mover]), nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if over, _ := e.pos.GameOver(); over {
		fmt.Fprintln(e.out, "bestmove none")
		return errors.New("game is over")
	}
	mover := e.pos.ToMove()
	limit, err := parseGo(words, mover)
	if err != nil {
		return err
	}

	ag := e.agent(mover)
	start := time.Now()
	a, err := match.Turn(ctx, ag, ai.Adapt(e.pos), limit)
	if errors.Is(err, match.ErrNoAction) {
		fmt.Fprintln(e.out, "bestmove none")
		return err
	}
	if err != nil {
		return err
	}
	// a turn cut off by its deadline may not have recorded its stats
	if st, c := ag.Stats(), ag.Context(); c.LastPly == e.pos.PlyCount() && c.LastAction == a {
		fmt.Fprintf(e.out, "info depth %d time %d nodes %d score %s opening %t\n",
			st.Depth,
			time.Since(start)/time.Millisecond,
			st.Visited,
			c.LastValue,
			c.Opening,
		)
	}
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(e.pos.Config(), a))
	return nil
}
