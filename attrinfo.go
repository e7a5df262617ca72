package citro3d

import (
	"errors"

	"github.com/Swiftloke/citro3d/encoding"
	"github.com/Swiftloke/citro3d/gpu"
)

var (
	ErrAttrInfoFull   = errors.New("citro3d: attribute table is full")
	ErrComponentCount = errors.New("citro3d: component count out of range")
	ErrInputRegister  = errors.New("citro3d: input register out of range")
)

// An AttrInfo describes the format of every vertex attribute a draw batch
// uses: per-attribute component type and count, packed four bits each
// into the two hardware format words, plus the mapping from attributes to
// shader input registers. Buffer descriptors (BufInfo) say where the data
// sits; AttrInfo says what it looks like.
type AttrInfo struct {
	fmtLow, fmtHigh uint32
	permutation     encoding.Permutation
	count           int
}

// NewAttrInfo returns a reset table.
func NewAttrInfo() *AttrInfo {
	info := new(AttrInfo)
	info.Reset()
	return info
}

// Reset empties the table. All attribute slots start flagged as fixed;
// AddLoader clears the flag for the slots it populates.
func (info *AttrInfo) Reset() {
	*info = AttrInfo{fmtHigh: 0xFFF << 16}
}

// Len returns the number of attributes added so far.
func (info *AttrInfo) Len() int {
	return info.count
}

// FormatWords returns the two packed format words: 4-bit component
// type/count fields for attributes 0-7 in the low word and 8-11 in the
// low half of the high word, the fixed-attribute mask in bits 16-27 of
// the high word, and the attribute count minus one in its top nibble.
func (info *AttrInfo) FormatWords() [2]uint32 {
	return [2]uint32{info.fmtLow, info.fmtHigh}
}

// Permutation returns the attribute-to-input-register mapping, one nibble
// per attribute.
func (info *AttrInfo) Permutation() encoding.Permutation {
	return info.permutation
}

// AddLoader appends an attribute loaded from a vertex buffer and returns
// its index. fmt and componentCount (1-4) describe the data; inputReg is
// the shader input register it feeds, or negative to use the attribute's
// own index.
func (info *AttrInfo) AddLoader(inputReg int, fmt gpu.AttribFmt, componentCount int) (int, error) {
	if componentCount < 1 || componentCount > 4 {
		return -1, ErrComponentCount
	}
	id, err := info.add(inputReg)
	if err != nil {
		return -1, err
	}
	f := encoding.PackAttribFmt(fmt, componentCount)
	if id < 8 {
		info.fmtLow |= uint32(f) << (id * 4)
	} else {
		info.fmtHigh |= uint32(f) << ((id - 8) * 4)
	}
	info.fmtHigh &^= 1 << (id + 16) // not a fixed attribute
	return id, nil
}

// AddFixed appends an attribute whose value comes from the fixed vertex
// attribute registers rather than a buffer, and returns its index.
func (info *AttrInfo) AddFixed(inputReg int) (int, error) {
	return info.add(inputReg)
}

func (info *AttrInfo) add(inputReg int) (int, error) {
	if info.count == MaxAttributes {
		return -1, ErrAttrInfoFull
	}
	id := info.count
	if inputReg < 0 {
		inputReg = id
	}
	if inputReg > 0xF {
		return -1, ErrInputRegister
	}
	info.count++
	info.permutation |= encoding.Permutation(inputReg) << (id * 4)
	info.fmtHigh = info.fmtHigh&^(0xF<<28) | uint32(info.count-1)<<28
	return id, nil
}
