package ai

import "github.com/nelhage/isolation/isolation"

// State is the read-only view of a game position used by the search.
// Implementations must be immutable: Result returns a new State and
// never modifies the receiver.
type State interface {
	PlyCount() int
	Loc(p isolation.Player) isolation.Location
	// Actions returns the legal actions for the player to move. The
	// search visits them in the order returned.
	Actions() []isolation.Action
	Result(a isolation.Action) State
	TerminalTest() bool
	// Utility is only meaningful on terminal states. Positive values
	// favor p.
	Utility(p isolation.Player) float64
	Liberties(l isolation.Location) []isolation.Location
	XY(l isolation.Location) (x, y int)
}

// Centered is implemented by states that know the centre square of
// their board.
type Centered interface {
	Center() isolation.Location
}

// Publisher receives the actions a player proposes. Publish may be
// called any number of times; the last call wins.
type Publisher interface {
	Publish(a isolation.Action)
}

// Offerer is a Publisher that can refuse actions once the turn they
// belong to is over. Offer reports whether a was accepted.
type Offerer interface {
	Publisher
	Offer(a isolation.Action) bool
}

// offer publishes a to out and reports whether it was accepted.
func offer(out Publisher, a isolation.Action) bool {
	if o, ok := out.(Offerer); ok {
		return o.Offer(a)
	}
	out.Publish(a)
	return true
}

type PublisherFunc func(a isolation.Action)

func (f PublisherFunc) Publish(a isolation.Action) {
	f(a)
}

// Player chooses an action for the side to move in s and publishes it
// to out before returning.
type Player interface {
	ChooseAction(s State, out Publisher) error
}
