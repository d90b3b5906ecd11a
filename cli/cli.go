package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

type Glyphs struct {
	Open, Blocked string
	Players       [2]string
}

type CLI struct {
	Config  isolation.Config
	Glyphs  *Glyphs
	Out     io.Writer
	Players [2]ai.Player
	// Limit is the per-move budget; zero means unlimited.
	Limit time.Duration
}

var DefaultGlyphs = Glyphs{
	Open:    ".",
	Blocked: "x",
	Players: [2]string{"1", "2"},
}

var UnicodeGlyphs = Glyphs{
	Open:    "·",
	Blocked: "▪",
	Players: [2]string{"♘", "♞"},
}

func (c *CLI) Play(ctx context.Context) (*match.Result, error) {
	p := isolation.New(c.Config)
	c.render(p)
	res, err := match.Play(ctx, match.Config{
		Initial: p,
		Limit:   c.Limit,
		Observe: func(p *isolation.Position, a isolation.Action, took time.Duration) {
			mover := p.ToMove().Opponent()
			n := (p.PlyCount()-1)/2 + 1
			if mover == isolation.Player1 {
				fmt.Fprintf(c.Out, "%d. %s", n, notation.FormatMove(p.Config(), a))
			} else {
				fmt.Fprintf(c.Out, "%d. ... %s", n, notation.FormatMove(p.Config(), a))
			}
			fmt.Fprintf(c.Out, " (%s)\n", took.Round(time.Millisecond))
			c.render(p)
		},
	}, c.Players)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.Out, "Game Over! ")
	switch res.Reason {
	case match.Stuck:
		fmt.Fprintf(c.Out, "%s wins: %s has no moves left\n", res.Winner, res.Winner.Opponent())
	case match.Timeout:
		fmt.Fprintf(c.Out, "%s wins on time\n", res.Winner)
	case match.Illegal:
		fmt.Fprintf(c.Out, "%s wins: %s played an illegal move\n", res.Winner, res.Winner.Opponent())
	case match.Cutoff:
		fmt.Fprintf(c.Out, "no result after %d plies\n", len(res.Moves))
	}
	return res, nil
}

func (c *CLI) render(p *isolation.Position) {
	RenderBoard(c.Glyphs, c.Out, p)
}

func RenderBoard(g *Glyphs, out io.Writer, p *isolation.Position) {
	if g == nil {
		g = &DefaultGlyphs
	}
	cfg := p.Config()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for y := p.Height() - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%d\t", y+1)
		for x := 0; x < p.Width(); x++ {
			l := cfg.Square(x, y)
			switch {
			case l == p.Loc(isolation.Player1):
				fmt.Fprintf(w, "%s\t", g.Players[isolation.Player1])
			case l == p.Loc(isolation.Player2):
				fmt.Fprintf(w, "%s\t", g.Players[isolation.Player2])
			case p.IsOpen(l):
				fmt.Fprintf(w, "%s\t", g.Open)
			default:
				fmt.Fprintf(w, "%s\t", g.Blocked)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < p.Width(); x++ {
		fmt.Fprintf(w, "%c\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "open: %d ply: %d\n", p.OpenSquares(), p.PlyCount())
}
