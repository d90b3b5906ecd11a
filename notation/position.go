package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/isolation/isolation"
)

// Positions are written one row per '/'-separated field, top row
// first, followed by a space and the ply count:
//
//	'.' open square
//	'x' blocked square
//	'1' player1's knight
//	'2' player2's knight
//
// e.g. "..x/.1./2.. 3" on a 3x3 board.

func ParsePosition(s string) (*isolation.Position, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, errors.New("bad position: wrong number of words")
	}
	ply, err := strconv.Atoi(words[1])
	if err != nil || ply < 0 {
		return nil, fmt.Errorf("bad ply: %s", words[1])
	}
	rows := strings.Split(words[0], "/")
	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("bad position: empty row")
	}
	cfg := isolation.Config{Width: width, Height: height}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := isolation.New(cfg)
	c := p.Config()

	var blocked []isolation.Location
	locs := [2]isolation.Location{isolation.NoLocation, isolation.NoLocation}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d bad length: %d", i, len(row))
		}
		y := height - 1 - i
		for x, ch := range row {
			l := c.Square(x, y)
			switch ch {
			case '.':
			case 'x':
				blocked = append(blocked, l)
			case '1', '2':
				pl := isolation.Player(ch - '1')
				if locs[pl] != isolation.NoLocation {
					return nil, fmt.Errorf("%s placed twice", pl)
				}
				locs[pl] = l
			default:
				return nil, fmt.Errorf("bad square %q in row %d", ch, i)
			}
		}
	}
	// player n makes its placement at ply n
	for i, l := range locs {
		if placed := l != isolation.NoLocation; placed != (ply > i) {
			return nil, fmt.Errorf("bad position: %s placed=%t at ply %d", isolation.Player(i), placed, ply)
		}
	}
	return isolation.FromSquares(cfg, blocked, locs, ply)
}

func FormatPosition(p *isolation.Position) string {
	c := p.Config()
	var rows []string
	for y := c.Height - 1; y >= 0; y-- {
		var row strings.Builder
		for x := 0; x < c.Width; x++ {
			l := c.Square(x, y)
			switch {
			case l == p.Loc(isolation.Player1):
				row.WriteByte('1')
			case l == p.Loc(isolation.Player2):
				row.WriteByte('2')
			case p.IsOpen(l):
				row.WriteByte('.')
			default:
				row.WriteByte('x')
			}
		}
		rows = append(rows, row.String())
	}
	return fmt.Sprintf("%s %d", strings.Join(rows, "/"), p.PlyCount())
}
