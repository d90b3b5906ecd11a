// Package symmetry maps Isolation positions and games onto their
// reflections. Knight moves look the same in a mirror, so reflected
// positions have the same game value.
package symmetry

import (
	"fmt"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
)

type Symmetry func(x, y int) (int, int)

// symmetries returns the board's symmetry group, identity first.
// Rectangular boards have four; square boards also have the diagonal
// reflections and quarter turns.
func symmetries(w, h int) []Symmetry {
	identity := func(x, y int) (int, int) {
		return x, y
	}
	flipX := func(x, y int) (int, int) {
		return w - 1 - x, y
	}
	flipY := func(x, y int) (int, int) {
		return x, h - 1 - y
	}
	rotate2 := func(x, y int) (int, int) {
		return w - 1 - x, h - 1 - y
	}
	syms := []Symmetry{identity, flipX, flipY, rotate2}
	if w != h {
		return syms
	}

	flipDiag1 := func(x, y int) (int, int) {
		return y, x
	}
	flipDiag2 := func(x, y int) (int, int) {
		return w - 1 - y, w - 1 - x
	}
	rotCW := func(x, y int) (int, int) {
		return y, w - 1 - x
	}
	rotCCW := func(x, y int) (int, int) {
		return w - 1 - y, x
	}
	return append(syms, flipDiag1, flipDiag2, rotCW, rotCCW)
}

func transform(c *isolation.Config, s Symmetry, l isolation.Location) isolation.Location {
	if l == isolation.NoLocation {
		return l
	}
	return c.Square(s(c.XY(l)))
}

func TransformAction(c *isolation.Config, s Symmetry, a isolation.Action) isolation.Action {
	return isolation.Action(transform(c, s, a.Dest()))
}

// Transform returns the image of p under s.
func Transform(p *isolation.Position, s Symmetry) (*isolation.Position, error) {
	c := p.Config()
	var blocked []isolation.Location
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if l := c.Square(x, y); !p.IsOpen(l) {
				blocked = append(blocked, transform(c, s, l))
			}
		}
	}
	locs := [2]isolation.Location{
		transform(c, s, p.Loc(isolation.Player1)),
		transform(c, s, p.Loc(isolation.Player2)),
	}
	return isolation.FromSquares(*c, blocked, locs, p.PlyCount())
}

type PositionAndSymmetry struct {
	P *isolation.Position
	S Symmetry
}

// Symmetries returns the distinct images of p, starting with p itself.
func Symmetries(p *isolation.Position) ([]PositionAndSymmetry, error) {
	seen := make(map[string]struct{})
	var out []PositionAndSymmetry
	for _, s := range symmetries(p.Width(), p.Height()) {
		sp, err := Transform(p, s)
		if err != nil {
			return nil, err
		}
		k := notation.FormatPosition(sp)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, PositionAndSymmetry{P: sp, S: s})
	}
	return out, nil
}

// Key is the same for p and all of its reflections.
func Key(p *isolation.Position) (string, error) {
	syms, err := Symmetries(p)
	if err != nil {
		return "", err
	}
	best := ""
	for i, s := range syms {
		if k := notation.FormatPosition(s.P); i == 0 || k < best {
			best = k
		}
	}
	return best, nil
}

func preferAction(c *isolation.Config, l, r isolation.Action) bool {
	lx, ly := c.XY(l.Dest())
	rx, ry := c.XY(r.Dest())
	if ly != ry {
		return ly < ry
	}
	return lx < rx
}

// Canonical returns the reflection of the game ms that sorts first,
// comparing moves in order by rank and then file.
func Canonical(cfg isolation.Config, ms []isolation.Action) ([]isolation.Action, error) {
	p := isolation.New(cfg)
	c := p.Config()
	if _, err := notation.Replay(p, ms); err != nil {
		return nil, fmt.Errorf("canonical: %w", err)
	}

	var best []isolation.Action
	for _, s := range symmetries(c.Width, c.Height) {
		out := make([]isolation.Action, len(ms))
		for i, m := range ms {
			out[i] = TransformAction(c, s, m)
		}
		if best == nil || less(c, out, best) {
			best = out
		}
	}
	return best, nil
}

func less(c *isolation.Config, l, r []isolation.Action) bool {
	for i := range l {
		if l[i] == r[i] {
			continue
		}
		return preferAction(c, l[i], r[i])
	}
	return false
}
