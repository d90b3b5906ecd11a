package bitboard

import "math/bits"

// Bits is a 128-bit set of board indices. Bit i of the board is bit i
// of Lo for i < 64 and bit i-64 of Hi otherwise.
type Bits struct {
	Lo, Hi uint64
}

const Capacity = 128

// Constants describes a rectangular board laid out row-major with
// Pad unused columns at the end of every row, so that short jumps
// off either edge land on a padding square rather than wrapping
// onto the next row.
type Constants struct {
	Width, Height uint
	Pad           uint
	Stride        uint
	Size          uint

	// Mask has a bit set for every real (non-padding) square.
	Mask Bits
}

func Precompute(width, height, pad uint) Constants {
	var c Constants
	c.Width = width
	c.Height = height
	c.Pad = pad
	c.Stride = width + pad
	c.Size = c.Stride*height - pad
	for y := uint(0); y < height; y++ {
		for x := uint(0); x < width; x++ {
			c.Mask = c.Mask.Set(y*c.Stride + x)
		}
	}
	return c
}

func Bit(i uint) Bits {
	if i < 64 {
		return Bits{Lo: 1 << i}
	}
	return Bits{Hi: 1 << (i - 64)}
}

func (b Bits) Test(i uint) bool {
	if i >= Capacity {
		return false
	}
	if i < 64 {
		return b.Lo&(1<<i) != 0
	}
	return b.Hi&(1<<(i-64)) != 0
}

func (b Bits) Set(i uint) Bits {
	return b.Or(Bit(i))
}

func (b Bits) Clear(i uint) Bits {
	return b.AndNot(Bit(i))
}

func (b Bits) Or(o Bits) Bits {
	return Bits{b.Lo | o.Lo, b.Hi | o.Hi}
}

func (b Bits) And(o Bits) Bits {
	return Bits{b.Lo & o.Lo, b.Hi & o.Hi}
}

func (b Bits) AndNot(o Bits) Bits {
	return Bits{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

func (b Bits) IsZero() bool {
	return b.Lo == 0 && b.Hi == 0
}

func Popcount(b Bits) int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// TrailingZeros returns the index of the lowest set bit, or
// Capacity if b is empty.
func TrailingZeros(b Bits) uint {
	if b.Lo != 0 {
		return uint(bits.TrailingZeros64(b.Lo))
	}
	return 64 + uint(bits.TrailingZeros64(b.Hi))
}

// Indices appends the index of every set bit, in ascending order, to
// out.
func Indices(b Bits, out []uint) []uint {
	for lo := b.Lo; lo != 0; lo &= lo - 1 {
		out = append(out, uint(bits.TrailingZeros64(lo)))
	}
	for hi := b.Hi; hi != 0; hi &= hi - 1 {
		out = append(out, 64+uint(bits.TrailingZeros64(hi)))
	}
	return out
}

func BitCoords(c *Constants, i uint) (x, y uint) {
	return i % c.Stride, i / c.Stride
}
