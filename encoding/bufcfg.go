package encoding

import "github.com/Swiftloke/citro3d/gpu"

// A Permutation describes the order in which a buffer's attributes appear
// in memory, one 4-bit slot per physical position. The least significant
// nibble names the attribute stored first, the next nibble the attribute
// stored second, and so on. For example, with three attributes, 0x210
// stores them in logical order and 0x120 stores attribute 1 first, then
// 2, then 0.
//
// Slot values 0xC-0xF are not attribute indices; they insert explicit
// padding between attributes (see the Pad constants). Over the remaining
// slots the sequence must be a bijection on the buffer's attribute
// indices: repeating or omitting an index is not detected here and
// produces incorrect vertex fetches, not an error.
type Permutation uint64

// Padding slot markers, skipping 4, 8, 12 and 16 bytes respectively.
const (
	Pad4  uint8 = 0xC
	Pad8  uint8 = 0xD
	Pad12 uint8 = 0xE
	Pad16 uint8 = 0xF
)

// MakePermutation packs slot values in storage order: slots[0] is the
// attribute stored first.
func MakePermutation(slots ...uint8) Permutation {
	var p Permutation
	for i, s := range slots {
		p = setNibble(p, i, s)
	}
	return p
}

// Slot returns the i'th slot value.
func (p Permutation) Slot(i int) uint8 {
	return nibble(p, i)
}

// Slots unpacks the first n slot values in storage order.
func (p Permutation) Slots(n int) []uint8 {
	s := make([]uint8, n)
	for i := range s {
		s[i] = nibble(p, i)
	}
	return s
}

// Layout of the second buffer format word. The first word holds
// permutation bits 31:0; the second holds the remaining permutation
// nibbles, the stride and the attribute count:
//
//	flags[1]: |perm 47:32|stride|attribCount|
//	    bits:  0-15       16-23  28-31
const (
	bufFlagsPermHighShift  = 32
	bufFlagsStrideShift    = 16
	bufFlagsStrideMask     = 0xFF
	bufFlagsAttribCntShift = 28
	bufFlagsAttribCntMask  = 0xF
)

// MaxBufStride is the largest per-buffer stride the format word can hold.
const MaxBufStride = bufFlagsStrideMask

// PackBufFlags builds a buffer descriptor's two format words. The stride
// must be in 0..MaxBufStride and attribCount in 1..12; the caller
// validates both.
func PackBufFlags(perm Permutation, stride, attribCount int) [2]uint32 {
	return [2]uint32{
		uint32(perm),
		uint32(perm>>bufFlagsPermHighShift)&0xFFFF |
			uint32(stride)<<bufFlagsStrideShift |
			uint32(attribCount)<<bufFlagsAttribCntShift,
	}
}

// UnpackBufFlags is the inverse of PackBufFlags.
func UnpackBufFlags(flags [2]uint32) (perm Permutation, stride, attribCount int) {
	perm = Permutation(flags[0]) | Permutation(flags[1]&0xFFFF)<<bufFlagsPermHighShift
	stride = int(flags[1]>>bufFlagsStrideShift) & bufFlagsStrideMask
	attribCount = int(flags[1]>>bufFlagsAttribCntShift) & bufFlagsAttribCntMask
	return perm, stride, attribCount
}

// PackBufBase converts the descriptor table's base address into the word
// the hardware consumes. Addressing granularity is 8 bytes; the low three
// bits are truncated.
func PackBufBase(addr uint32) uint32 {
	return addr >> 3
}

// PackAttribFmt builds the 4-bit field describing one vertex attribute:
// the component type in the low two bits, the component count minus one
// above it. componentCount must be in 1..4.
func PackAttribFmt(fmt gpu.AttribFmt, componentCount int) uint8 {
	return uint8(componentCount-1)<<2 | uint8(fmt)&0x3
}

// UnpackAttribFmt is the inverse of PackAttribFmt.
func UnpackAttribFmt(f uint8) (gpu.AttribFmt, int) {
	return gpu.AttribFmt(f & 0x3), int(f>>2)&0x3 + 1
}
