package citro3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swiftloke/citro3d/encoding"
	"github.com/Swiftloke/citro3d/gpu"
)

func TestAttrInfoReset(t *testing.T) {
	info := NewAttrInfo()
	assert.Equal(t, 0, info.Len())
	assert.Equal(t, [2]uint32{0, 0xFFF << 16}, info.FormatWords())
	assert.Equal(t, encoding.Permutation(0), info.Permutation())
}

func TestAttrInfoAddLoader(t *testing.T) {
	info := NewAttrInfo()

	id, err := info.AddLoader(-1, gpu.FmtFloat, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	id, err = info.AddLoader(-1, gpu.FmtShort, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	w := info.FormatWords()
	// Attribute 0: float x3 -> 0xB; attribute 1: short x2 -> 0x6.
	assert.Equal(t, uint32(0x6B), w[0])
	// Fixed-attribute bits cleared for the two loaded slots, count = 2.
	assert.Equal(t, uint32(1<<28|0xFFC<<16), w[1])
	assert.Equal(t, encoding.MakePermutation(0, 1), info.Permutation())
}

func TestAttrInfoInputRegister(t *testing.T) {
	info := NewAttrInfo()
	_, err := info.AddLoader(5, gpu.FmtFloat, 4)
	require.NoError(t, err)
	assert.Equal(t, encoding.MakePermutation(5), info.Permutation())

	_, err = info.AddLoader(16, gpu.FmtFloat, 4)
	assert.ErrorIs(t, err, ErrInputRegister)
}

func TestAttrInfoAddFixed(t *testing.T) {
	info := NewAttrInfo()
	_, err := info.AddLoader(-1, gpu.FmtFloat, 3)
	require.NoError(t, err)
	id, err := info.AddFixed(7)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	w := info.FormatWords()
	// The fixed slot keeps its flag bit and contributes no format nibble.
	assert.NotZero(t, w[1]&(1<<17))
	assert.Zero(t, w[0]&0xF0)
	assert.Equal(t, encoding.MakePermutation(0, 7), info.Permutation())
	assert.Equal(t, 2, info.Len())
}

func TestAttrInfoHighWord(t *testing.T) {
	info := NewAttrInfo()
	for i := 0; i < 9; i++ {
		_, err := info.AddLoader(-1, gpu.FmtUnsignedByte, 4)
		require.NoError(t, err)
	}
	w := info.FormatWords()
	// Attribute 8 lands in the high word's low nibble: ubyte x4 -> 0xD.
	assert.Equal(t, uint32(0xD), w[1]&0xFFFF)
	assert.Equal(t, uint32(8<<28), w[1]&(0xF<<28))
}

func TestAttrInfoCapacity(t *testing.T) {
	info := NewAttrInfo()
	for i := 0; i < MaxAttributes; i++ {
		_, err := info.AddLoader(-1, gpu.FmtByte, 1)
		require.NoError(t, err)
	}
	_, err := info.AddLoader(-1, gpu.FmtByte, 1)
	assert.ErrorIs(t, err, ErrAttrInfoFull)
	_, err = info.AddFixed(-1)
	assert.ErrorIs(t, err, ErrAttrInfoFull)
}

func TestAttrInfoComponentCount(t *testing.T) {
	info := NewAttrInfo()
	for _, count := range []int{0, 5} {
		_, err := info.AddLoader(-1, gpu.FmtFloat, count)
		assert.ErrorIs(t, err, ErrComponentCount)
	}
	assert.Equal(t, 0, info.Len())
}
