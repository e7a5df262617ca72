package citro3d

import (
	"errors"

	"github.com/Swiftloke/citro3d/encoding"
)

const (
	// MaxBuffers is the number of vertex buffer descriptors a table can
	// hold.
	MaxBuffers = 12
	// MaxAttributes is the number of attributes one buffer (or one
	// attribute table) can describe.
	MaxAttributes = 12

	// DefaultBufBase is the base address a reset table starts with: the
	// beginning of the memory region vertex data normally lives in.
	DefaultBufBase uint32 = 0x18000000
)

var (
	ErrBufInfoFull    = errors.New("citro3d: buffer descriptor table is full")
	ErrAttribCount    = errors.New("citro3d: attribute count out of range")
	ErrAddrBeforeBase = errors.New("citro3d: buffer address precedes table base")
	ErrStrideRange    = errors.New("citro3d: stride not representable")
)

// A BufCfg is one vertex buffer descriptor: a byte offset from the
// table's base address and the two packed format words built by
// encoding.PackBufFlags.
type BufCfg struct {
	Offset uint32
	Flags  [2]uint32
}

// A BufInfo describes where a draw batch's vertex buffers live. Entries
// store offsets relative to a shared base address; the entry's position
// in the table is its hardware binding slot. Build a table with Add,
// install it with Context.SetBufInfo.
//
// A BufInfo is owned by a single goroutine; see the package concurrency
// contract.
type BufInfo struct {
	base  uint32
	count int
	bufs  [MaxBuffers]BufCfg
}

// NewBufInfo returns a reset table.
func NewBufInfo() *BufInfo {
	info := new(BufInfo)
	info.Reset()
	return info
}

// Reset empties the table and restores the default base address.
func (info *BufInfo) Reset() {
	*info = BufInfo{base: DefaultBufBase}
}

// Base returns the table's base address.
func (info *BufInfo) Base() uint32 {
	return info.base
}

// SetBase changes the table's base address. The hardware consumes the
// base in 8-byte units; the low three bits are truncated at flush time.
// Existing entries keep their offsets.
func (info *BufInfo) SetBase(addr uint32) {
	info.base = addr
}

// Len returns the number of populated entries.
func (info *BufInfo) Len() int {
	return info.count
}

// Buf returns the i'th descriptor. i must be in [0, Len()).
func (info *BufInfo) Buf(i int) BufCfg {
	return info.bufs[i]
}

// Add appends a buffer descriptor and returns its binding slot.
//
// addr is the buffer's address; it must not precede the table's base.
// stride is the byte distance between successive elements, at most
// encoding.MaxBufStride. attribCount is the number of attributes
// interleaved in the buffer, 1 to MaxAttributes. perm orders them; Add
// accepts any nibble sequence, and a sequence that is not a permutation
// of the buffer's attribute indices (padding markers aside) yields
// incorrect vertex fetches, not an error.
//
// A failed Add leaves the table unchanged.
func (info *BufInfo) Add(addr uint32, stride, attribCount int, perm encoding.Permutation) (int, error) {
	if info.count == MaxBuffers {
		return -1, ErrBufInfoFull
	}
	if attribCount < 1 || attribCount > MaxAttributes {
		return -1, ErrAttribCount
	}
	if stride < 0 || stride > encoding.MaxBufStride {
		return -1, ErrStrideRange
	}
	if addr < info.base {
		return -1, ErrAddrBeforeBase
	}
	id := info.count
	info.bufs[id] = BufCfg{
		Offset: addr - info.base,
		Flags:  encoding.PackBufFlags(perm, stride, attribCount),
	}
	info.count++
	return id, nil
}
