package fixedint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	pos := FromUint64(0b0101, 4).SignExtend(8)
	assert.Equal([]bool{true, false, true, false, false, false, false, false}, pos.Bits())

	neg := FromUint64(0b1101, 4).SignExtend(8)
	assert.Equal([]bool{true, false, true, true, true, true, true, true}, neg.Bits())

	wide := FromInt64(-3, 8).SignExtend(200)
	assert.Equal(200, wide.Width())
	assert.True(wide.Bit(199))
	assert.Equal(int64(-3), wide.Int64())

	assert.Panics(func() { FromUint64(1, 8).SignExtend(4) })
}

func TestZeroExtend(t *testing.T) {
	assert := assert.New(t)

	neg := FromUint64(0b1101, 4).ZeroExtend(8)
	assert.Equal([]bool{true, false, true, true, false, false, false, false}, neg.Bits())

	assert.Equal(FromUint64(7, 8), FromUint64(7, 8).ZeroExtend(8))
	assert.Panics(func() { FromUint64(1, 8).ZeroExtend(7) })
}

func TestExtend(t *testing.T) {
	assert := assert.New(t)

	x := FromUint64(0b1000, 4)
	assert.Equal(uint64(0b1111_1000), x.Extend(8, true).Uint64())
	assert.Equal(uint64(0b0000_1000), x.Extend(8, false).Uint64())
}

func TestShrink(t *testing.T) {
	assert := assert.New(t)

	r, zeros, ones := FromUint64(0b11100101, 8).Shrink(4)
	assert.Equal([]bool{true, false, true, false}, r.Bits())
	assert.Equal(1, zeros)
	assert.Equal(3, ones)

	r, zeros, ones = FromUint64(0x5, 8).Shrink(8)
	assert.Equal(uint64(5), r.Uint64())
	assert.Equal(0, zeros)
	assert.Equal(0, ones)

	assert.Panics(func() { FromUint64(1, 8).Shrink(9) })
}

func TestShrinkZeroExtend(t *testing.T) {
	assert := assert.New(t)

	for w1 := 3; w1 <= 8; w1++ {
		for v := range uint64(1) << w1 {
			x := FromUint64(v, w1)
			for _, w2 := range []int{w1, w1 + 1, 64, 65, 150} {
				r, _, ones := x.ZeroExtend(w2).Shrink(w1)
				assert.Equal(x, r)
				assert.Equal(0, ones)
			}
		}
	}
}

func TestInvert(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FromUint64(0b1010, 4), FromUint64(0b0101, 4).Invert())
	assert.Equal(FromInt64(-1, 70), Zero(70).Invert())
}

func TestNegate(t *testing.T) {
	assert := assert.New(t)

	r, ok := FromUint64(0b0110, 4).Negate()
	assert.True(ok)
	assert.Equal(FromUint64(0b1010, 4), r)

	_, ok = FromUint64(0b1000, 4).Negate()
	assert.False(ok)

	r, ok = Zero(4).Negate()
	assert.True(ok)
	assert.Equal(Zero(4), r)
}

func TestNegateTwice(t *testing.T) {
	assert := assert.New(t)

	for width := 3; width <= 9; width++ {
		for v := range uint64(1) << width {
			x := FromUint64(v, width)
			once, ok := x.Negate()
			if x.IsLargestPossibleNegative() {
				assert.False(ok)
				continue
			}
			assert.True(ok)
			twice, ok := once.Negate()
			assert.True(ok)
			assert.Equal(x, twice)
		}
	}
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)

	r, ok := FromInt64(-5, 8).Abs()
	assert.True(ok)
	assert.Equal(FromUint64(5, 8), r)

	r, ok = FromUint64(5, 8).Abs()
	assert.True(ok)
	assert.Equal(FromUint64(5, 8), r)

	_, ok = FromInt64(-128, 8).Abs()
	assert.False(ok)
}

func TestShiftLeft(t *testing.T) {
	assert := assert.New(t)

	r, lost := FromUint64(0b0011, 4).shiftLeft(2)
	assert.Equal(uint64(0b1100), r.Uint64())
	assert.False(lost)

	r, lost = FromUint64(0b0110, 4).shiftLeft(2)
	assert.Equal(uint64(0b1000), r.Uint64())
	assert.True(lost)

	r, lost = FromUint64(1, 4).shiftLeft(4)
	assert.True(r.IsZero())
	assert.True(lost)

	r, lost = FromUint64(1, 130).shiftLeft(129)
	assert.True(r.Bit(129))
	assert.False(lost)

	r, lost = FromUint64(0xf0, 130).shiftLeft(60)
	assert.False(lost)
	for n := range 130 {
		assert.Equal(n >= 64 && n < 68, r.Bit(n), n)
	}
}

func TestMulSmall(t *testing.T) {
	assert := assert.New(t)

	r, over := FromUint64(25, 8).mulSmall(10)
	assert.Equal(uint64(250), r.Uint64())
	assert.False(over)

	r, over = FromUint64(26, 8).mulSmall(10)
	assert.Equal(uint64(260%256), r.Uint64())
	assert.True(over)

	// The constant does not need to fit in the width.
	r, over = FromUint64(1, 3).mulSmall(10)
	assert.Equal(uint64(2), r.Uint64())
	assert.True(over)

	r, over = FromUint64(0, 3).mulSmall(10)
	assert.True(r.IsZero())
	assert.False(over)

	r, over = FromUint64(1<<63, 64).mulSmall(2)
	assert.True(r.IsZero())
	assert.True(over)
}

func TestAddSmall(t *testing.T) {
	assert := assert.New(t)

	r, over := FromUint64(0, 3).addSmall(9)
	assert.Equal(uint64(1), r.Uint64())
	assert.True(over)

	r, over = FromUint64(0xffff_ffff_ffff_ffff, 65).addSmall(1)
	assert.True(r.Bit(64))
	assert.False(over)

	r, over = FromInt64(-1, 128).addSmall(1)
	assert.True(r.IsZero())
	assert.True(over)
}
