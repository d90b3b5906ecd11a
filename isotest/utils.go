// Package isotest contains helpers for tests that need game positions.
package isotest

import (
	"golang.org/x/exp/rand"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
)

func Move(c *isolation.Config, s string) isolation.Action {
	m, e := notation.ParseMove(c, s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(c *isolation.Config, s string) []isolation.Action {
	ms, e := notation.ParseMoves(c, s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Position plays the moves in ms on a fresh board of the given
// configuration.
func Position(cfg isolation.Config, ms string) *isolation.Position {
	p := isolation.New(cfg)
	p, e := notation.Replay(p, Moves(p.Config(), ms))
	if e != nil {
		panic(e)
	}
	return p
}

// ParsePosition is notation.ParsePosition, panicking on error.
func ParsePosition(s string) *isolation.Position {
	p, e := notation.ParsePosition(s)
	if e != nil {
		panic(e)
	}
	return p
}

// RandomPosition plays up to plies uniformly random moves from a fresh
// board, stopping early if the game ends.
func RandomPosition(seed uint64, cfg isolation.Config, plies int) *isolation.Position {
	r := rand.New(rand.NewSource(seed))
	p := isolation.New(cfg)
	for i := 0; i < plies; i++ {
		ms := p.Actions()
		if len(ms) == 0 {
			break
		}
		next, e := p.Move(ms[r.Intn(len(ms))])
		if e != nil {
			panic(e)
		}
		p = next
	}
	return p
}
