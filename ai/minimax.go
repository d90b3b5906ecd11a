package ai

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/isolation"
)

const DefaultDepth = 4

type Config struct {
	// Depth is the fixed search depth in plies. Zero means
	// DefaultDepth.
	Depth     int
	Heuristic Heuristic
	Debug     int
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	Cutoffs   uint64
	Elapsed   time.Duration
}

// MinimaxAI runs a fixed-depth alpha-beta search on behalf of a single
// player. Each call to Analyze is one independent pass; nothing is
// carried between calls.
type MinimaxAI struct {
	cfg    Config
	player isolation.Player

	st Stats
}

func NewMinimax(player isolation.Player, cfg Config) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg, player: player}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = DefaultDepth
	}
	return m
}

func (m *MinimaxAI) Config() Config {
	return m.cfg
}

// Analyze searches s to the configured depth and returns the best root
// action with its value. Root actions are each searched against the
// full (-Inf, +Inf) window; siblings at the root do not narrow one
// another's bounds. Ties go to the earliest action.
func (m *MinimaxAI) Analyze(s State) (isolation.Action, float64, Stats, error) {
	m.st = Stats{Depth: m.cfg.Depth}
	start := time.Now()
	actions := s.Actions()
	if len(actions) == 0 {
		return 0, 0, m.st, errors.Wrapf(ErrContractViolation, "search at ply %d: no legal actions", s.PlyCount())
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	best, bestv := actions[0], math.Inf(-1)
	for i, a := range actions {
		v := m.minValue(s.Result(a), alpha, beta, m.cfg.Depth-1)
		if i == 0 || v > bestv {
			best, bestv = a, v
		}
	}
	m.st.Elapsed = time.Since(start)

	if m.cfg.Debug > 0 {
		log.Debug().
			Int("ply", s.PlyCount()).
			Int("depth", m.st.Depth).
			Int("action", int(best)).
			Stringer("value", Score(bestv)).
			Uint64("visited", m.st.Visited).
			Uint64("evaluated", m.st.Evaluated).
			Uint64("terminal", m.st.Terminal).
			Uint64("cutoffs", m.st.Cutoffs).
			Dur("time", m.st.Elapsed).
			Msg("[minimax] search")
	}
	return best, bestv, m.st, nil
}

func (m *MinimaxAI) leaf(s State, depth int) (float64, bool) {
	if s.TerminalTest() {
		m.st.Evaluated++
		m.st.Terminal++
		return s.Utility(m.player), true
	}
	if depth <= 0 {
		m.st.Evaluated++
		return Evaluate(m.cfg.Heuristic, s, m.player), true
	}
	m.st.Visited++
	return 0, false
}

func (m *MinimaxAI) maxValue(s State, alpha, beta float64, depth int) float64 {
	if v, ok := m.leaf(s, depth); ok {
		return v
	}
	v := math.Inf(-1)
	for _, a := range s.Actions() {
		v = math.Max(v, m.minValue(s.Result(a), alpha, beta, depth-1))
		if v >= beta {
			m.st.Cutoffs++
			return v
		}
		alpha = math.Max(alpha, v)
	}
	return v
}

func (m *MinimaxAI) minValue(s State, alpha, beta float64, depth int) float64 {
	if v, ok := m.leaf(s, depth); ok {
		return v
	}
	v := math.Inf(1)
	for _, a := range s.Actions() {
		v = math.Min(v, m.maxValue(s.Result(a), alpha, beta, depth-1))
		if v <= alpha {
			m.st.Cutoffs++
			return v
		}
		beta = math.Min(beta, v)
	}
	return v
}

// Minimax is a plain minimax search with no pruning, choosing the
// same way Analyze does. It visits every node to the given depth and
// exists to check the alpha-beta search against.
func Minimax(s State, player isolation.Player, depth int, h Heuristic) (isolation.Action, float64) {
	var value func(s State, depth int, maximize bool) float64
	value = func(s State, depth int, maximize bool) float64 {
		if s.TerminalTest() {
			return s.Utility(player)
		}
		if depth <= 0 {
			return Evaluate(h, s, player)
		}
		v := math.Inf(1)
		if maximize {
			v = math.Inf(-1)
		}
		for _, a := range s.Actions() {
			cv := value(s.Result(a), depth-1, !maximize)
			if maximize {
				v = math.Max(v, cv)
			} else {
				v = math.Min(v, cv)
			}
		}
		return v
	}

	var best isolation.Action
	bestv := math.Inf(-1)
	for i, a := range s.Actions() {
		v := value(s.Result(a), depth-1, false)
		if i == 0 || v > bestv {
			best, bestv = a, v
		}
	}
	return best, bestv
}
