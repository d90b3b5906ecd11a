package ai

import (
	"github.com/pkg/errors"

	"github.com/nelhage/isolation/isolation"
)

type adapter struct {
	p *isolation.Position
}

// Adapt wraps a rules-engine position as a State.
func Adapt(p *isolation.Position) State {
	return adapter{p}
}

// Unwrap returns the position underlying a State built by Adapt.
func Unwrap(s State) (*isolation.Position, bool) {
	a, ok := s.(adapter)
	return a.p, ok
}

func (a adapter) PlyCount() int {
	return a.p.PlyCount()
}

func (a adapter) Loc(p isolation.Player) isolation.Location {
	return a.p.Loc(p)
}

func (a adapter) Actions() []isolation.Action {
	return a.p.Actions()
}

func (a adapter) Result(act isolation.Action) State {
	next, err := a.p.Move(act)
	if err != nil {
		panic(errors.Wrapf(ErrContractViolation, "result(%d) at ply %d: %v", act, a.p.PlyCount(), err))
	}
	return adapter{next}
}

func (a adapter) TerminalTest() bool {
	over, _ := a.p.GameOver()
	return over
}

func (a adapter) Utility(p isolation.Player) float64 {
	return a.p.Utility(p)
}

func (a adapter) Liberties(l isolation.Location) []isolation.Location {
	return a.p.Liberties(l)
}

func (a adapter) XY(l isolation.Location) (x, y int) {
	return a.p.XY(l)
}

func (a adapter) Center() isolation.Location {
	return a.p.Center()
}
