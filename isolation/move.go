package isolation

import "errors"

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrGameOver      = errors.New("game is over")
	ErrOffBoard      = errors.New("square is off the board")
)

// Knight offsets are generated in this order for every position; the
// search relies on the order being stable.
type direction int

const (
	nne direction = iota
	ene
	ese
	sse
	ssw
	wsw
	wnw
	nnw
)

func knightOffsets(stride int) [8]int {
	var o [8]int
	o[nne] = 2*stride + 1
	o[ene] = stride + 2
	o[ese] = -stride + 2
	o[sse] = -2*stride + 1
	o[ssw] = -2*stride - 1
	o[wsw] = -stride - 2
	o[wnw] = stride - 2
	o[nnw] = 2*stride - 1
	return o
}

// Move returns the position after the player to move plays a. The
// receiver is not modified.
func (p *Position) Move(a Action) (*Position, error) {
	if over, _ := p.GameOver(); over {
		return nil, ErrGameOver
	}
	if !p.legal(a) {
		return nil, ErrIllegalAction
	}
	next := *p
	dest := a.Dest()
	next.open = next.open.Clear(uint(dest))
	next.locs[p.ToMove()] = dest
	next.ply++
	return &next, nil
}

func (p *Position) legal(a Action) bool {
	dest := a.Dest()
	if !p.IsOpen(dest) {
		return false
	}
	from := p.locs[p.ToMove()]
	if from == NoLocation {
		return true
	}
	for _, o := range p.cfg.offsets {
		if int(from)+o == int(dest) {
			return true
		}
	}
	return false
}
