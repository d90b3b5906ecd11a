package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecompute(t *testing.T) {
	c := Precompute(11, 9, 2)
	assert.Equal(t, uint(13), c.Stride)
	assert.Equal(t, uint(115), c.Size)
	assert.Equal(t, 99, Popcount(c.Mask))

	assert.True(t, c.Mask.Test(0))
	assert.True(t, c.Mask.Test(10))
	assert.False(t, c.Mask.Test(11), "padding")
	assert.False(t, c.Mask.Test(12), "padding")
	assert.True(t, c.Mask.Test(13))
	assert.True(t, c.Mask.Test(114))
	assert.False(t, c.Mask.Test(115))

	c = Precompute(3, 3, 2)
	assert.Equal(t, uint(13), c.Size)
	if c.Mask != (Bits{Lo: 0x7 | 0x7<<5 | 0x7<<10}) {
		t.Errorf("mask(3x3) = %x", c.Mask.Lo)
	}
}

func TestSetClear(t *testing.T) {
	cases := []uint{0, 1, 63, 64, 65, 114, 127}
	for _, i := range cases {
		var b Bits
		b = b.Set(i)
		if !b.Test(i) {
			t.Errorf("Set(%d) not set", i)
		}
		if Popcount(b) != 1 {
			t.Errorf("Set(%d) popcount=%d", i, Popcount(b))
		}
		if TrailingZeros(b) != i {
			t.Errorf("TrailingZeros(Bit(%d))=%d", i, TrailingZeros(b))
		}
		b = b.Clear(i)
		if !b.IsZero() {
			t.Errorf("Clear(%d) left %v", i, b)
		}
	}
	assert.False(t, Bits{Lo: ^uint64(0), Hi: ^uint64(0)}.Test(Capacity))
}

func TestIndices(t *testing.T) {
	b := Bit(3).Or(Bit(64)).Or(Bit(0)).Or(Bit(100))
	assert.Equal(t, []uint{0, 3, 64, 100}, Indices(b, nil))
	assert.Empty(t, Indices(Bits{}, nil))
	assert.Equal(t, uint(Capacity), TrailingZeros(Bits{}))
}

func TestBitCoords(t *testing.T) {
	c := Precompute(11, 9, 2)
	x, y := BitCoords(&c, 57)
	assert.Equal(t, uint(5), x)
	assert.Equal(t, uint(4), y)
}
