package ai

import "github.com/nelhage/isolation/isolation"

// OpeningPlies is the last ply at which the agent plays the greedy
// opening policy instead of searching. Mobility scores are not
// meaningful while most of the board is still open.
const OpeningPlies = 2

// Greedy returns the action after which player's knight has the most
// liberties, looking one ply ahead with no model of the opponent. Ties
// go to the earliest action. ok is false if there are no actions.
// Mobility is counted at the knight's new square, not the one it left.
func Greedy(s State, player isolation.Player) (best isolation.Action, mobility int, ok bool) {
	mobility = -1
	for _, a := range s.Actions() {
		next := s.Result(a)
		n := len(next.Liberties(next.Loc(player)))
		if n > mobility {
			best, mobility, ok = a, n, true
		}
	}
	return best, mobility, ok
}
