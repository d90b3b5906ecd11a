package ai

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicText(t *testing.T) {
	for _, h := range []Heuristic{Baseline, Custom} {
		text, err := h.MarshalText()
		require.NoError(t, err)
		var back Heuristic
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, h, back)
	}

	var h Heuristic
	assert.Error(t, h.Set("aggressive"))
	require.NoError(t, h.Set("custom"))
	assert.Equal(t, Custom, h)

	_, err := Heuristic(9).MarshalText()
	assert.Error(t, err)

	out, err := json.Marshal(Config{Depth: 3, Heuristic: Custom})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Depth":3,"Heuristic":"custom","Debug":0}`, string(out))
}

func TestScoreJSON(t *testing.T) {
	cases := []struct {
		in  Score
		out string
	}{
		{Score(math.Inf(1)), `"+inf"`},
		{Score(math.Inf(-1)), `"-inf"`},
		{-2.5, `-2.5`},
		{0, `0`},
	}
	for _, tc := range cases {
		out, err := json.Marshal(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.out, string(out))

		var back Score
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, tc.in, back)
	}

	var s Score
	assert.Error(t, json.Unmarshal([]byte(`"nan"`), &s))
}

func TestContextJSON(t *testing.T) {
	c := Context{Turn: 3, LastPly: 6, LastAction: 57, LastValue: Score(math.Inf(1)), LastDepth: 4}
	out, err := json.Marshal(c)
	require.NoError(t, err)
	var back Context
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, c, back)
}
