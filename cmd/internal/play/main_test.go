package play

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

func TestRecord(t *testing.T) {
	res, err := match.Play(context.Background(), match.Config{
		Initial: isolation.New(isolation.Config{Width: 7, Height: 7}),
	}, [2]ai.Player{ai.NewGreedy(isolation.Player1), ai.NewRandom(4)})
	require.NoError(t, err)

	rec := Record(res, "greedy", "random:4")
	assert.Equal(t, "7x7", rec.FindTag("Size"))
	assert.Equal(t, "", rec.FindTag("Position"))
	assert.Equal(t, "stuck", rec.FindTag("Termination"))
	assert.Equal(t, notation.ResultToken(res.Winner), rec.Result)

	back, err := notation.ParseRecord(strings.NewReader(rec.Render()))
	require.NoError(t, err)
	p, err := back.Position()
	require.NoError(t, err)
	assert.Equal(t, notation.FormatPosition(res.Position), notation.FormatPosition(p))

	g := LogEntry(res, "greedy", "random:4")
	assert.Equal(t, res.Winner.String(), g.Winner)
	assert.Equal(t, len(res.Moves), g.Plies)
	assert.Equal(t, strings.Join(back.Moves, " "), g.Moves)
}

func TestRecordCutoff(t *testing.T) {
	start, err := notation.ParsePosition(".../.1./2.. 2")
	require.NoError(t, err)
	res := &match.Result{Initial: start, Position: start, Reason: match.Cutoff}
	rec := Record(res, "a", "b")
	assert.Equal(t, ".../.1./2.. 2", rec.FindTag("Position"))
	assert.Equal(t, "", rec.Result)
	assert.Equal(t, "", LogEntry(res, "a", "b").Winner)
}
