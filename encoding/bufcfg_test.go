package encoding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swiftloke/citro3d/gpu"
)

func TestPermutationRoundTrip(t *testing.T) {
	for n := 1; n <= 12; n++ {
		t.Run(fmt.Sprintf("reversed-%d", n), func(t *testing.T) {
			slots := make([]uint8, n)
			for i := range slots {
				slots[i] = uint8(n - 1 - i)
			}
			p := MakePermutation(slots...)
			assert.Equal(t, slots, p.Slots(n))
			for i, want := range slots {
				assert.Equal(t, want, p.Slot(i))
			}
		})
		t.Run(fmt.Sprintf("identity-%d", n), func(t *testing.T) {
			slots := make([]uint8, n)
			for i := range slots {
				slots[i] = uint8(i)
			}
			p := MakePermutation(slots...)
			assert.Equal(t, slots, p.Slots(n))
		})
	}
}

func TestPermutationPadding(t *testing.T) {
	// Padding markers may appear between attribute indices; the encoder
	// carries them like any other slot value.
	p := MakePermutation(0, Pad8, 1, Pad16)
	assert.Equal(t, []uint8{0, Pad8, 1, Pad16}, p.Slots(4))
}

func TestPackBufFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		perm        Permutation
		stride      int
		attribCount int
	}{
		{"single attribute", MakePermutation(0), 4, 1},
		{"reordered pair", MakePermutation(1, 0), 12, 2},
		{"padded", MakePermutation(0, Pad4, 1), 20, 2},
		{"max stride", MakePermutation(2, 1, 0), MaxBufStride, 3},
		{
			// Twelve nibbles span both format words.
			"full width",
			MakePermutation(11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0),
			48, 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := PackBufFlags(tt.perm, tt.stride, tt.attribCount)
			perm, stride, count := UnpackBufFlags(flags)
			assert.Equal(t, tt.perm, perm)
			assert.Equal(t, tt.stride, stride)
			assert.Equal(t, tt.attribCount, count)
		})
	}
}

func TestPackBufFlagsLayout(t *testing.T) {
	perm := MakePermutation(1, 0, 2)
	flags := PackBufFlags(perm, 0x30, 3)
	require.Equal(t, uint32(0x021), flags[0])
	require.Equal(t, uint32(3<<28|0x30<<16), flags[1])
}

func TestPackBufBase(t *testing.T) {
	assert.Equal(t, uint32(0x18000000>>3), PackBufBase(0x18000000))
	// Sub-granule bits are truncated, not preserved.
	assert.Equal(t, PackBufBase(0x18000000), PackBufBase(0x18000007))
}

func TestPackAttribFmtRoundTrip(t *testing.T) {
	fmts := []gpu.AttribFmt{gpu.FmtByte, gpu.FmtUnsignedByte, gpu.FmtShort, gpu.FmtFloat}
	for _, f := range fmts {
		for count := 1; count <= 4; count++ {
			packed := PackAttribFmt(f, count)
			gotFmt, gotCount := UnpackAttribFmt(packed)
			assert.Equal(t, f, gotFmt)
			assert.Equal(t, count, gotCount)
		}
	}
}
