package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
)

// ErrNoAction means the player's time ran out before it published
// anything.
var ErrNoAction = errors.New("no action published")

// ContextPlayer is implemented by players that want to see the turn's
// deadline, such as engines running in another process.
type ContextPlayer interface {
	ChooseActionContext(ctx context.Context, s ai.State, out ai.Publisher) error
}

// Turn asks pl for an action in s. If limit is nonzero the player is
// given that long; when the time is up the last action it published
// wins and anything it does afterwards is discarded. The player's own
// goroutine is not stopped, it simply finishes into a sealed Latest.
func Turn(ctx context.Context, pl ai.Player, s ai.State, limit time.Duration) (isolation.Action, error) {
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	var out Latest
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					done <- err
					return
				}
				done <- fmt.Errorf("player panicked: %v", r)
			}
		}()
		if cp, ok := pl.(ContextPlayer); ok {
			done <- cp.ChooseActionContext(ctx, s, &out)
		} else {
			done <- pl.ChooseAction(s, &out)
		}
	}()

	select {
	case err := <-done:
		a, ok := out.Seal()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrNoAction
		}
		return a, nil
	case <-ctx.Done():
		a, ok := out.Seal()
		log.Debug().
			Int("ply", s.PlyCount()).
			Bool("published", ok).
			Msg("[match] preempted")
		if !ok {
			return 0, ErrNoAction
		}
		return a, nil
	}
}
