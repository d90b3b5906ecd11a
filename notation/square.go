package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nelhage/isolation/isolation"
)

var squareRE = regexp.MustCompile(`^([a-z])([1-9][0-9]*)$`)

var ErrBadSquare = errors.New("bad square")

// ParseSquare parses a square name such as "f5". Files are letters
// starting at 'a' for x=0; ranks count from 1 at y=0.
func ParseSquare(c *isolation.Config, s string) (isolation.Location, error) {
	groups := squareRE.FindStringSubmatch(strings.TrimSpace(s))
	if groups == nil {
		return isolation.NoLocation, fmt.Errorf("%q: %w", s, ErrBadSquare)
	}
	x := int(groups[1][0] - 'a')
	y, err := strconv.Atoi(groups[2])
	if err != nil {
		return isolation.NoLocation, fmt.Errorf("%q: %w", s, ErrBadSquare)
	}
	l := c.Square(x, y-1)
	if l == isolation.NoLocation {
		return l, fmt.Errorf("%q: off the board: %w", s, ErrBadSquare)
	}
	return l, nil
}

func FormatSquare(c *isolation.Config, l isolation.Location) string {
	if l == isolation.NoLocation {
		return "-"
	}
	x, y := c.XY(l)
	return fmt.Sprintf("%c%d", 'a'+x, y+1)
}

// ParseMove parses an action, written as its destination square.
func ParseMove(c *isolation.Config, s string) (isolation.Action, error) {
	l, err := ParseSquare(c, s)
	return isolation.Action(l), err
}

func FormatMove(c *isolation.Config, a isolation.Action) string {
	return FormatSquare(c, a.Dest())
}

// ParseMoves parses a space-separated list of moves.
func ParseMoves(c *isolation.Config, s string) ([]isolation.Action, error) {
	var out []isolation.Action
	for _, w := range strings.Fields(s) {
		a, err := ParseMove(c, w)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func FormatMoves(c *isolation.Config, ms []isolation.Action) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = FormatMove(c, m)
	}
	return strings.Join(bits, " ")
}

// Replay plays ms from p and returns the final position.
func Replay(p *isolation.Position, ms []isolation.Action) (*isolation.Position, error) {
	for i, m := range ms {
		next, err := p.Move(m)
		if err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, FormatMove(p.Config(), m), err)
		}
		p = next
	}
	return p, nil
}
