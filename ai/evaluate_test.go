package ai

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/isotest"
)

func TestBaselineSymmetric(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		p := isotest.RandomPosition(seed, isolation.Config{}, int(seed))
		s := Adapt(p)
		for _, pl := range []isolation.Player{isolation.Player1, isolation.Player2} {
			assert.Equal(t,
				Evaluate(Baseline, s, pl),
				-Evaluate(Baseline, s, pl.Opponent()),
				"seed=%d player=%s", seed, pl)
		}
	}
}

func TestBaseline(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "f5 a1")
	s := Adapt(p)
	assert.Equal(t, 6.0, Evaluate(Baseline, s, isolation.Player1))
	assert.Equal(t, -6.0, Evaluate(Baseline, s, isolation.Player2))
}

func TestCustom(t *testing.T) {
	cases := []struct {
		pos    string
		expect float64
	}{
		{"f5 a1", 0},
		{"g7 a1", -math.Hypot(1, 2)},
		{"a1 f5", -math.Hypot(5, 4)},
		{"k9 f5", -math.Hypot(5, 4)},
	}
	for _, tc := range cases {
		s := Adapt(isotest.Position(isolation.Config{}, tc.pos))
		got := Evaluate(Custom, s, isolation.Player1)
		assert.InDelta(t, tc.expect, got, 1e-9, tc.pos)
		assert.LessOrEqual(t, got, 0.0)
	}

	// centre of a 7x7 board is d4
	s := Adapt(isotest.Position(isolation.Config{Width: 7, Height: 7}, "d4 a1"))
	assert.Equal(t, 0.0, Evaluate(Custom, s, isolation.Player1))
	assert.InDelta(t, -math.Hypot(3, 3), Evaluate(Custom, s, isolation.Player2), 1e-9)

	// states without a centre use the standard board's
	toy := &toyState{locs: [2]isolation.Location{4, 0}}
	assert.InDelta(t, -math.Hypot(4, 3), Evaluate(Custom, toy, isolation.Player1), 1e-9)

	// not yet placed
	s = Adapt(isolation.New(isolation.Config{}))
	assert.Equal(t, 0.0, Evaluate(Custom, s, isolation.Player1))
}

func TestCustomDecreasesAwayFromCentre(t *testing.T) {
	p := isolation.New(isolation.Config{})
	c := p.Config()
	prev := 1.0
	for x := 5; x < c.Width; x++ {
		next, err := isolation.FromSquares(isolation.Config{}, nil,
			[2]isolation.Location{c.Square(x, 4), isolation.NoLocation}, 2)
		assert.NoError(t, err)
		v := Evaluate(Custom, Adapt(next), isolation.Player1)
		assert.Less(t, v, prev, "x=%d", x)
		prev = v
	}
}

func TestEvaluateUnknown(t *testing.T) {
	s := Adapt(isotest.Position(isolation.Config{}, "f5 a1"))
	assert.Panics(t, func() { Evaluate(Heuristic(7), s, isolation.Player1) })
}

func TestExplainScore(t *testing.T) {
	var buf bytes.Buffer
	ExplainScore(&buf, Adapt(isotest.Position(isolation.Config{}, "f5 a1")), isolation.Player1)
	out := buf.String()
	assert.Contains(t, out, "liberties")
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, "player2")
}
