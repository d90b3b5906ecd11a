package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
)

type Reason int

const (
	// Stuck: the loser had no liberties.
	Stuck Reason = iota
	// Timeout: the loser published nothing before its deadline.
	Timeout
	// Illegal: the loser published an illegal action.
	Illegal
	// Cutoff: the game hit the ply limit and has no winner.
	Cutoff
)

func (r Reason) String() string {
	switch r {
	case Stuck:
		return "stuck"
	case Timeout:
		return "timeout"
	case Illegal:
		return "illegal"
	case Cutoff:
		return "cutoff"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

type Config struct {
	// Initial is the starting position; nil means an empty standard
	// board.
	Initial *isolation.Position
	// Limit is the per-move budget. Zero means no limit.
	Limit time.Duration
	// Cutoff stops the game after this many plies. Zero means no
	// cutoff.
	Cutoff int
	// Observe, if set, is called after every action is applied.
	Observe func(p *isolation.Position, a isolation.Action, took time.Duration)
}

type Result struct {
	Initial  *isolation.Position
	Position *isolation.Position
	Moves    []isolation.Action
	Winner   isolation.Player
	Reason   Reason
}

// Decided reports whether the game has a winner.
func (r *Result) Decided() bool {
	return r.Reason != Cutoff
}

// Play runs a game between players[0] (player1) and players[1]
// (player2). Errors other than timeouts and illegal actions, such as a
// contract violation from a player, abort the game.
func Play(ctx context.Context, cfg Config, players [2]ai.Player) (*Result, error) {
	p := cfg.Initial
	if p == nil {
		p = isolation.New(isolation.Config{})
	}
	res := &Result{Initial: p}
	for {
		if over, winner := p.GameOver(); over {
			res.Winner, res.Reason = winner, Stuck
			break
		}
		if cfg.Cutoff > 0 && p.PlyCount()-res.Initial.PlyCount() >= cfg.Cutoff {
			res.Reason = Cutoff
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mover := p.ToMove()
		start := time.Now()
		a, err := Turn(ctx, players[mover], ai.Adapt(p), cfg.Limit)
		took := time.Since(start)
		if errors.Is(err, ErrNoAction) {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			res.Winner, res.Reason = mover.Opponent(), Timeout
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s at ply %d: %w", mover, p.PlyCount(), err)
		}
		next, err := p.Move(a)
		if err != nil {
			res.Winner, res.Reason = mover.Opponent(), Illegal
			break
		}
		p = next
		res.Moves = append(res.Moves, a)
		if cfg.Observe != nil {
			cfg.Observe(p, a, took)
		}
	}
	res.Position = p
	return res, nil
}
