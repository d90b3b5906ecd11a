package ai

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/nelhage/isolation/isolation"
)

// Heuristic selects the static evaluation used at the search
// frontier.
type Heuristic int

const (
	// Baseline scores the difference in mobility: my liberties minus
	// my opponent's.
	Baseline Heuristic = iota
	// Custom scores the negated distance from my knight to the centre
	// of the board.
	Custom

	maxHeuristic
)

// standard board centre, (5, 4), used for states that are not
// Centered.
const standardCenterX, standardCenterY = 5, 4

// Evaluate scores a non-terminal state from player p's point of view.
func Evaluate(h Heuristic, s State, p isolation.Player) float64 {
	switch h {
	case Baseline:
		return baseline(s, p)
	case Custom:
		return custom(s, p)
	}
	panic(fmt.Sprintf("Evaluate: unknown heuristic %d", int(h)))
}

func baseline(s State, p isolation.Player) float64 {
	mine := len(s.Liberties(s.Loc(p)))
	theirs := len(s.Liberties(s.Loc(p.Opponent())))
	return float64(mine - theirs)
}

func custom(s State, p isolation.Player) float64 {
	d, ok := centerDistance(s, s.Loc(p))
	if !ok {
		return 0
	}
	return -d
}

func centerDistance(s State, l isolation.Location) (float64, bool) {
	if l == isolation.NoLocation {
		return 0, false
	}
	cx, cy := standardCenterX, standardCenterY
	if c, ok := s.(Centered); ok {
		cx, cy = s.XY(c.Center())
	}
	x, y := s.XY(l)
	return math.Hypot(float64(cx-x), float64(cy-y)), true
}

// ExplainScore writes the inputs and outputs of each heuristic for s,
// from p's point of view.
func ExplainScore(out io.Writer, s State, p isolation.Player) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\t%s\t%s\n", p, p.Opponent())
	fmt.Fprintf(tw, "liberties\t%d\t%d\n",
		len(s.Liberties(s.Loc(p))),
		len(s.Liberties(s.Loc(p.Opponent()))))
	var dist [2]string
	for i, pl := range []isolation.Player{p, p.Opponent()} {
		if d, ok := centerDistance(s, s.Loc(pl)); ok {
			dist[i] = fmt.Sprintf("%.3f", d)
		} else {
			dist[i] = "-"
		}
	}
	fmt.Fprintf(tw, "centre\t%s\t%s\n", dist[0], dist[1])
	for h := Heuristic(0); h < maxHeuristic; h++ {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", h, Evaluate(h, s, p), Evaluate(h, s, p.Opponent()))
	}
	tw.Flush()
}
