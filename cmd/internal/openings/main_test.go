package openings

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
	"github.com/nelhage/isolation/symmetry"
)

func TestGenerate(t *testing.T) {
	board := isolation.Config{Width: 5, Height: 5}
	// corner, edge, edge-middle, inner diagonal, inner edge, centre
	ps, err := Generate(board, 1, 6, 1)
	require.NoError(t, err)
	require.Len(t, ps, 6)

	keys := make(map[string]bool)
	for _, p := range ps {
		assert.Equal(t, 1, p.PlyCount())
		k, err := symmetry.Key(p)
		require.NoError(t, err)
		assert.False(t, keys[k], "duplicate opening %s", k)
		keys[k] = true
	}

	_, err = Generate(board, 1, 7, 1)
	assert.Error(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(isolation.Config{}, 4, 10, 7)
	require.NoError(t, err)
	b, err := Generate(isolation.Config{}, 4, 10, 7)
	require.NoError(t, err)

	var wa, wb bytes.Buffer
	write(&wa, a)
	write(&wb, b)
	assert.Equal(t, wa.String(), wb.String())

	lines := strings.Split(strings.TrimSpace(wa.String()), "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		p, err := notation.ParsePosition(l)
		require.NoError(t, err, l)
		assert.Equal(t, 4, p.PlyCount())
	}
}
