package ai

import (
	"fmt"

	"github.com/nelhage/isolation/isolation"
)

// toyState is a hand-built game tree on a 3x3 board; locations are
// x + 3*y. It lets tests pin down exactly which liberties and
// utilities the search sees.
type toyState struct {
	ply      int
	locs     [2]isolation.Location
	moves    []isolation.Action
	children map[isolation.Action]*toyState
	libs     map[isolation.Location][]isolation.Location

	terminal bool
	// utility for player1; player2 sees the negation
	utility float64
}

var _ State = &toyState{}

func (t *toyState) PlyCount() int                             { return t.ply }
func (t *toyState) Loc(p isolation.Player) isolation.Location { return t.locs[p] }
func (t *toyState) Actions() []isolation.Action               { return t.moves }
func (t *toyState) TerminalTest() bool                        { return t.terminal }
func (t *toyState) XY(l isolation.Location) (int, int)        { return int(l) % 3, int(l) / 3 }

func (t *toyState) Liberties(l isolation.Location) []isolation.Location {
	return t.libs[l]
}

func (t *toyState) Utility(p isolation.Player) float64 {
	if p == isolation.Player1 {
		return t.utility
	}
	return -t.utility
}

func (t *toyState) Result(a isolation.Action) State {
	c, ok := t.children[a]
	if !ok {
		panic(fmt.Sprintf("toyState: no child for %d", a))
	}
	return c
}

// depthProbe records the deepest Result chain the search builds below
// the state it wraps.
type depthProbe struct {
	State
	depth int
	max   *int
}

func (d depthProbe) Result(a isolation.Action) State {
	n := depthProbe{d.State.Result(a), d.depth + 1, d.max}
	if n.depth > *d.max {
		*d.max = n.depth
	}
	return n
}

type recorder struct {
	actions []isolation.Action
}

func (r *recorder) Publish(a isolation.Action) {
	r.actions = append(r.actions, a)
}
