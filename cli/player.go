package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/notation"
)

// NewCLIPlayer returns a player that reads moves typed at in. "?"
// lists the legal moves.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) ai.Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) ChooseAction(s ai.State, out ai.Publisher) error {
	p, ok := ai.Unwrap(s)
	if !ok {
		return fmt.Errorf("cli: cannot play %T", s)
	}
	cfg := p.Config()
	for {
		fmt.Fprintf(c.out, "%s> ", p.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "?" {
			fmt.Fprintln(c.out, notation.FormatMoves(cfg, p.Actions()))
			continue
		}
		a, err := notation.ParseMove(cfg, line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		if _, err := p.Move(a); err != nil {
			fmt.Fprintln(c.out, "illegal move:", err)
			continue
		}
		out.Publish(a)
		return nil
	}
}
