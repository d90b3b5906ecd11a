package ai

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/isolation"
)

// Context is the state an Agent carries from one turn to the next. It
// is serializable so callers can persist it between turns; the search
// itself never reads it.
type Context struct {
	Turn       int              `json:"turn"`
	LastPly    int              `json:"last_ply"`
	LastAction isolation.Action `json:"last_action"`
	LastValue  Score            `json:"last_value"`
	LastDepth  int              `json:"last_depth"`
	Opening    bool             `json:"opening"`
}

// Agent chooses actions for one player: the greedy opening policy for
// the first OpeningPlies plies, fixed-depth alpha-beta afterwards.
type Agent struct {
	player isolation.Player
	cfg    Config

	mu  sync.Mutex
	ctx Context
	st  Stats
	// gen counts calls to ChooseAction; only the newest call may
	// commit its result.
	gen uint64
}

func NewAgent(player isolation.Player, cfg Config) *Agent {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	return &Agent{player: player, cfg: cfg}
}

func (a *Agent) Player() isolation.Player {
	return a.player
}

func (a *Agent) Config() Config {
	return a.cfg
}

// ChooseAction publishes exactly one action for s to out. It returns
// an error wrapping ErrContractViolation, and publishes nothing, if s
// is terminal or has no legal actions. The carry-over context is only
// updated if out accepts the action and no later call has started.
func (a *Agent) ChooseAction(s State, out Publisher) error {
	if s.TerminalTest() {
		return errors.Wrapf(ErrContractViolation, "choose action at ply %d: game is over", s.PlyCount())
	}
	if len(s.Actions()) == 0 {
		return errors.Wrapf(ErrContractViolation, "choose action at ply %d: no legal actions", s.PlyCount())
	}

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	var (
		act     isolation.Action
		value   float64
		st      Stats
		opening = s.PlyCount() <= OpeningPlies
	)
	if opening {
		var mobility int
		act, mobility, _ = Greedy(s, a.player)
		value = float64(mobility)
		st = Stats{Depth: 1}
	} else {
		var err error
		act, value, st, err = NewMinimax(a.player, a.cfg).Analyze(s)
		if err != nil {
			return err
		}
	}
	accepted := offer(out, act)

	if a.cfg.Debug > 0 {
		log.Debug().
			Stringer("player", a.player).
			Int("ply", s.PlyCount()).
			Bool("opening", opening).
			Int("action", int(act)).
			Stringer("value", Score(value)).
			Bool("accepted", accepted).
			Msg("[agent] publish")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !accepted || gen != a.gen {
		// the turn ended without us; its carry-over belongs to the caller
		return nil
	}
	a.ctx = Context{
		Turn:       a.ctx.Turn + 1,
		LastPly:    s.PlyCount(),
		LastAction: act,
		LastValue:  Score(value),
		LastDepth:  st.Depth,
		Opening:    opening,
	}
	a.st = st
	return nil
}

// Context returns the carry-over state after the most recent turn.
func (a *Agent) Context() Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctx
}

// Restore replaces the carry-over state, e.g. with one saved at the
// end of a previous turn.
func (a *Agent) Restore(c Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ctx = c
}

// Stats returns the search statistics of the most recent turn.
func (a *Agent) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.st
}
