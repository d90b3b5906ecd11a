package isolation

import (
	"fmt"
	"math"

	"github.com/nelhage/isolation/bitboard"
)

const (
	DefaultWidth  = 11
	DefaultHeight = 9

	// padding columns at the end of each row; knight moves jump at
	// most two columns.
	pad = 2
)

type Config struct {
	Width  int
	Height int

	c       bitboard.Constants
	offsets [8]int
}

// Validate reports whether the board dimensions fit the bitboard.
func (c Config) Validate() error {
	w, h := c.Width, c.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	if w < 1 || h < 1 || w > 26 {
		return fmt.Errorf("bad board size %dx%d", w, h)
	}
	if (w+pad)*h-pad > bitboard.Capacity {
		return fmt.Errorf("board %dx%d too large", w, h)
	}
	return nil
}

func (c *Config) precompute() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	c.c = bitboard.Precompute(uint(c.Width), uint(c.Height), pad)
	c.offsets = knightOffsets(int(c.c.Stride))
}

// Stride is the distance between vertically adjacent squares.
func (c *Config) Stride() int {
	return int(c.c.Stride)
}

// Square returns the location of (x, y), or NoLocation if it lies off
// the board.
func (c *Config) Square(x, y int) Location {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return NoLocation
	}
	return Location(y*c.Stride() + x)
}

func (c *Config) XY(l Location) (x, y int) {
	bx, by := bitboard.BitCoords(&c.c, uint(l))
	return int(bx), int(by)
}

// OnBoard reports whether l is a real square of this board.
func (c *Config) OnBoard(l Location) bool {
	return l >= 0 && uint(l) < c.c.Size && c.c.Mask.Test(uint(l))
}

// Center is the geometric centre square of the board. On the standard
// 11x9 board this is (5, 4), index 57.
func (c *Config) Center() Location {
	return c.Square(c.Width/2, c.Height/2)
}

// Position is an immutable game state. Positions are only ever
// created by New, FromSquares, or Move.
type Position struct {
	cfg *Config

	open bitboard.Bits
	ply  int
	locs [2]Location
}

func New(g Config) *Position {
	if err := g.Validate(); err != nil {
		panic(err.Error())
	}
	g.precompute()
	return &Position{
		cfg:  &g,
		open: g.c.Mask,
		locs: [2]Location{NoLocation, NoLocation},
	}
}

// FromSquares builds a position with the given squares blocked,
// players at locs, and ply count ply. Player locations are blocked
// whether or not they appear in blocked.
func FromSquares(cfg Config, blocked []Location, locs [2]Location, ply int) (*Position, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ply < 0 {
		return nil, fmt.Errorf("bad ply count: %d", ply)
	}
	p := New(cfg)
	p.ply = ply
	for _, l := range blocked {
		if !p.cfg.OnBoard(l) {
			return nil, fmt.Errorf("blocked square %d: %w", l, ErrOffBoard)
		}
		p.open = p.open.Clear(uint(l))
	}
	for i, l := range locs {
		if l == NoLocation {
			continue
		}
		if !p.cfg.OnBoard(l) {
			return nil, fmt.Errorf("%s at %d: %w", Player(i), l, ErrOffBoard)
		}
		p.open = p.open.Clear(uint(l))
		p.locs[i] = l
	}
	if locs[0] != NoLocation && locs[0] == locs[1] {
		return nil, fmt.Errorf("both players at %d", locs[0])
	}
	return p, nil
}

func (p *Position) Config() *Config {
	return p.cfg
}

func (p *Position) Width() int {
	return p.cfg.Width
}

func (p *Position) Height() int {
	return p.cfg.Height
}

func (p *Position) PlyCount() int {
	return p.ply
}

func (p *Position) ToMove() Player {
	return Player(p.ply % 2)
}

func (p *Position) Loc(pl Player) Location {
	return p.locs[pl]
}

func (p *Position) XY(l Location) (x, y int) {
	return p.cfg.XY(l)
}

func (p *Position) Center() Location {
	return p.cfg.Center()
}

func (p *Position) IsOpen(l Location) bool {
	if l < 0 {
		return false
	}
	return p.open.Test(uint(l))
}

// OpenSquares returns the number of squares nobody has visited.
func (p *Position) OpenSquares() int {
	return bitboard.Popcount(p.open)
}

// Liberties returns the open squares a knight on l could jump to,
// in fixed direction order. For NoLocation it returns every open
// square in ascending order.
func (p *Position) Liberties(l Location) []Location {
	if l == NoLocation {
		idx := bitboard.Indices(p.open, make([]uint, 0, bitboard.Popcount(p.open)))
		out := make([]Location, len(idx))
		for i, sq := range idx {
			out[i] = Location(sq)
		}
		return out
	}
	out := make([]Location, 0, len(p.cfg.offsets))
	for _, o := range p.cfg.offsets {
		if dest := Location(int(l) + o); p.IsOpen(dest) {
			out = append(out, dest)
		}
	}
	return out
}

func (p *Position) hasLiberties(l Location) bool {
	if l == NoLocation {
		return !p.open.IsZero()
	}
	for _, o := range p.cfg.offsets {
		if p.IsOpen(Location(int(l) + o)) {
			return true
		}
	}
	return false
}

// Actions returns the legal actions for the player to move.
func (p *Position) Actions() []Action {
	libs := p.Liberties(p.locs[p.ToMove()])
	out := make([]Action, len(libs))
	for i, l := range libs {
		out[i] = Action(l)
	}
	return out
}

// GameOver reports whether the player to move is stuck. The winner is
// always the other player; there are no draws.
func (p *Position) GameOver() (over bool, winner Player) {
	if p.hasLiberties(p.locs[p.ToMove()]) {
		return false, Player1
	}
	return true, p.ToMove().Opponent()
}

// Utility is +Inf if pl has won, -Inf if pl has lost, and 0 if the
// game is still in progress.
func (p *Position) Utility(pl Player) float64 {
	over, winner := p.GameOver()
	switch {
	case !over:
		return 0
	case winner == pl:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}
