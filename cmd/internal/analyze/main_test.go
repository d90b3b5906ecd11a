package analyze

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/isotest"
	"github.com/nelhage/isolation/notation"
)

func TestVerify(t *testing.T) {
	for seed := uint64(1); seed <= 4; seed++ {
		p := isotest.RandomPosition(seed, isolation.Config{Width: 7, Height: 7}, 5)
		var out bytes.Buffer
		c := &Command{verify: true, quiet: true, out: &out, opt: opt.Agent{Depth: 3}}
		require.NoError(t, c.analyze(context.Background(), p), out.String())
		if over, _ := p.GameOver(); !over {
			assert.Contains(t, out.String(), "minimax: action=")
		}
	}
}

func TestPositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte(`[Size "11x9"]

1. f5 a1
2. g7 b3
`), 0644))

	c := &Command{ply: -1}
	ps, err := c.positions([]string{path})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, 4, ps[0].PlyCount())

	c = &Command{ply: 1, variation: "a1"}
	ps, err = c.positions([]string{path})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, 2, ps[0].PlyCount())
	assert.Equal(t, isolation.Location(0), ps[0].Loc(isolation.Player2))

	c = &Command{ply: -1, all: true}
	ps, err = c.positions([]string{path})
	require.NoError(t, err)
	assert.Len(t, ps, 5)

	c = &Command{ply: 9}
	_, err = c.positions([]string{path})
	assert.Error(t, err)

	c = &Command{ply: -1}
	ps, err = c.positions([]string{"..x/.1./2..", "3"})
	require.NoError(t, err)
	assert.Equal(t, "..x/.1./2.. 3", notation.FormatPosition(ps[0]))

	_, err = c.positions(nil)
	assert.Error(t, err)
}

func TestEvaluateOnly(t *testing.T) {
	var out bytes.Buffer
	c := &Command{eval: true, quiet: true, out: &out}
	require.NoError(t, c.analyze(context.Background(), isotest.Position(isolation.Config{}, "f5 a1")))
	assert.Equal(t, " baseline=6\n", out.String())
}
