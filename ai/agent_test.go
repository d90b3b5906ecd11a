package ai

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/isotest"
)

func TestAgentSearches(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "f5 e5 g7 d7")
	ag := NewAgent(p.ToMove(), Config{})
	assert.Equal(t, DefaultDepth, ag.Config().Depth)

	var out recorder
	require.NoError(t, ag.ChooseAction(Adapt(p), &out))
	require.Len(t, out.actions, 1)

	want, wantv, _, err := NewMinimax(p.ToMove(), Config{Depth: DefaultDepth}).Analyze(Adapt(p))
	require.NoError(t, err)
	assert.Equal(t, want, out.actions[0])

	ctx := ag.Context()
	assert.Equal(t, 1, ctx.Turn)
	assert.Equal(t, 4, ctx.LastPly)
	assert.Equal(t, want, ctx.LastAction)
	assert.Equal(t, Score(wantv), ctx.LastValue)
	assert.Equal(t, DefaultDepth, ctx.LastDepth)
	assert.False(t, ctx.Opening)
	assert.NotZero(t, ag.Stats().Visited)

	_, err = p.Move(out.actions[0])
	assert.NoError(t, err, "agent published an illegal move")
}

func TestAgentDeterministic(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		p := isotest.RandomPosition(seed, isolation.Config{}, 6+int(seed))
		if over, _ := p.GameOver(); over {
			continue
		}
		var first isolation.Action
		for i := 0; i < 3; i++ {
			var out recorder
			ag := NewAgent(p.ToMove(), Config{Depth: 3, Heuristic: Custom})
			require.NoError(t, ag.ChooseAction(Adapt(p), &out))
			if i == 0 {
				first = out.actions[0]
			}
			assert.Equal(t, first, out.actions[0], "seed=%d", seed)
		}
	}
}

func TestAgentContractViolation(t *testing.T) {
	p, err := isolation.FromSquares(isolation.Config{}, []isolation.Location{27, 15}, [2]isolation.Location{0, 57}, 2)
	require.NoError(t, err)

	var out recorder
	ag := NewAgent(isolation.Player1, Config{})
	err = ag.ChooseAction(Adapt(p), &out)
	assert.ErrorIs(t, err, ErrContractViolation)
	assert.Equal(t, ErrContractViolation, errors.Cause(err))
	assert.Empty(t, out.actions)
	assert.Zero(t, ag.Context().Turn)

	// non-terminal, but the engine offers nothing
	err = ag.ChooseAction(&toyState{ply: 5, locs: [2]isolation.Location{4, 0}}, &out)
	assert.ErrorIs(t, err, ErrContractViolation)
	assert.Empty(t, out.actions)
}

func TestAdapterRejectsIllegalResult(t *testing.T) {
	s := Adapt(isotest.Position(isolation.Config{}, "f5 a1"))
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrContractViolation)
	}()
	s.Result(isolation.Action(58))
}

func TestAdapterUnwrap(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "f5")
	got, ok := Unwrap(Adapt(p))
	assert.True(t, ok)
	assert.Same(t, p, got)
	_, ok = Unwrap(&toyState{})
	assert.False(t, ok)
}

func TestRestore(t *testing.T) {
	ag := NewAgent(isolation.Player2, Config{})
	ag.Restore(Context{Turn: 7})
	p := isotest.Position(isolation.Config{}, "f5 e5 g7")
	var out recorder
	require.NoError(t, ag.ChooseAction(Adapt(p), &out))
	assert.Equal(t, 8, ag.Context().Turn)
}

// closed is a publisher whose turn is already over.
type closed struct {
	offered []isolation.Action
}

func (c *closed) Publish(a isolation.Action) { c.Offer(a) }

func (c *closed) Offer(a isolation.Action) bool {
	c.offered = append(c.offered, a)
	return false
}

func TestRejectedActionNotRecorded(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "f5 e5 g7 d7")
	ag := NewAgent(p.ToMove(), Config{Depth: 2})
	ag.Restore(Context{Turn: 3, LastPly: 2})

	var out closed
	require.NoError(t, ag.ChooseAction(Adapt(p), &out))
	assert.Len(t, out.offered, 1)
	assert.Equal(t, Context{Turn: 3, LastPly: 2}, ag.Context())
	assert.Equal(t, Stats{}, ag.Stats())

	var rec recorder
	require.NoError(t, ag.ChooseAction(Adapt(p), &rec))
	assert.Equal(t, 4, ag.Context().Turn)
	assert.Equal(t, 4, ag.Context().LastPly)
}

func TestRandomAndGreedy(t *testing.T) {
	p := isotest.Position(isolation.Config{}, "f5 e5 g7 d7")
	r := NewRandom(1)
	for i := 0; i < 20; i++ {
		var out recorder
		require.NoError(t, r.ChooseAction(Adapt(p), &out))
		require.Len(t, out.actions, 1)
		assert.Contains(t, p.Actions(), out.actions[0])
	}

	var out recorder
	require.NoError(t, NewGreedy(p.ToMove()).ChooseAction(Adapt(p), &out))
	assert.Equal(t, []isolation.Action{bestMobility(p, p.ToMove())}, out.actions)

	dead := &toyState{ply: 5}
	assert.ErrorIs(t, r.ChooseAction(dead, &out), ErrContractViolation)
	assert.ErrorIs(t, NewGreedy(isolation.Player1).ChooseAction(dead, &out), ErrContractViolation)
}
