package engine

import (
	"strconv"
	"time"
)

// TimeControl is the remaining clock and increment for each player.
type TimeControl struct {
	Time [2]time.Duration
	Inc  [2]time.Duration
}

// calcBudget picks how long to spend on one move given an optional
// fixed movetime and the mover's remaining game time and increment.
func calcBudget(move, game, inc time.Duration) time.Duration {
	budget := move
	if game > 0 {
		g := game/20 + inc/2
		if g >= game {
			g = game / 2
		}
		if budget == 0 || g < budget {
			budget = g
		}
	}
	return budget
}

func formatTime(d time.Duration) string {
	ms := d / time.Millisecond
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatUint(uint64(ms), 10)
}
