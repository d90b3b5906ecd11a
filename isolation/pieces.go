package isolation

import "fmt"

// Player identifies one of the two sides. Player1 moves on even
// plies and Player2 on odd ones.
type Player int8

const (
	Player1 Player = 0
	Player2 Player = 1
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("Player(%d)", int8(p))
	}
}

// Location is a board index: x + Stride*y.
type Location int

// NoLocation is the location of a player who has not yet placed their
// knight.
const NoLocation Location = -1

// Action is a legal move. For a player who has not yet been placed it
// is the square they place on; afterwards it is the square their
// knight jumps to.
type Action int

func (a Action) Dest() Location {
	return Location(a)
}
