package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/isotest"
	"github.com/nelhage/isolation/notation"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		w, h    int
		in, out string
	}{
		{11, 9, "a1", "a1"},
		{11, 9, "k9", "a1"},
		{11, 9, "k1", "a1"},
		{11, 9, "a9", "a1"},
		{11, 9, "k9 a1", "a1 k9"},
		{11, 9, "a9 k9", "a1 k1"},
		{11, 9, "f5 e5", "f5 e5"},
		{11, 9, "f5 g5", "f5 e5"},
		{11, 9, "a2", "a2"},
		{5, 5, "e1", "a1"},
		{5, 5, "a2", "b1"},
		{5, 5, "e4 e5", "b1 a1"},
		{5, 5, "a1 c3 b3", "a1 c3 c2"},
	}
	for _, tc := range cases {
		cfg := isolation.Config{Width: tc.w, Height: tc.h}
		c := isolation.New(cfg).Config()
		ms, err := notation.ParseMoves(c, tc.in)
		require.NoError(t, err, tc.in)
		got, err := Canonical(cfg, ms)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, notation.FormatMoves(c, got), "%dx%d %s", tc.w, tc.h, tc.in)
	}

	_, err := Canonical(isolation.Config{}, []isolation.Action{57, 57})
	assert.ErrorIs(t, err, isolation.ErrIllegalAction)
}

func TestSymmetries(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "b1 j9 d2")
	syms, err := Symmetries(p)
	require.NoError(t, err)
	require.Len(t, syms, 4)
	assert.Equal(t, notation.FormatPosition(p), notation.FormatPosition(syms[0].P))

	key, err := Key(p)
	require.NoError(t, err)
	for _, s := range syms {
		assert.Equal(t, p.PlyCount(), s.P.PlyCount())
		assert.Equal(t, len(p.Actions()), len(s.P.Actions()), "mobility is preserved")
		k, err := Key(s.P)
		require.NoError(t, err)
		assert.Equal(t, key, k)
	}

	centre := isotest.Position(isolation.Config{Width: 5, Height: 5}, "c3")
	syms, err = Symmetries(centre)
	require.NoError(t, err)
	assert.Len(t, syms, 1)
}

func TestTransformIsAMove(t *testing.T) {
	p := isotest.RandomPosition(11, isolation.Config{}, 7)
	for _, s := range symmetries(p.Width(), p.Height()) {
		sp, err := Transform(p, s)
		require.NoError(t, err)
		for _, a := range p.Actions() {
			_, err := sp.Move(TransformAction(p.Config(), s, a))
			assert.NoError(t, err)
		}
	}
}
