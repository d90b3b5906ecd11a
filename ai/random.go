package ai

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/nelhage/isolation/isolation"
)

// RandomAI plays a uniformly random legal action.
type RandomAI struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandom(seed uint64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomAI) ChooseAction(s State, out Publisher) error {
	actions := s.Actions()
	if len(actions) == 0 {
		return errors.Wrapf(ErrContractViolation, "random: no legal actions at ply %d", s.PlyCount())
	}
	r.mu.Lock()
	i := r.r.Intn(len(actions))
	r.mu.Unlock()
	out.Publish(actions[i])
	return nil
}

// GreedyAI plays the opening policy at every ply.
type GreedyAI struct {
	player isolation.Player
}

func NewGreedy(player isolation.Player) *GreedyAI {
	return &GreedyAI{player: player}
}

func (g *GreedyAI) ChooseAction(s State, out Publisher) error {
	a, _, ok := Greedy(s, g.player)
	if !ok {
		return errors.Wrapf(ErrContractViolation, "greedy: no legal actions at ply %d", s.PlyCount())
	}
	out.Publish(a)
	return nil
}
