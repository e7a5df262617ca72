package encoding

import (
	"errors"
	"fmt"

	"honnef.co/go/safeish"

	"github.com/Swiftloke/citro3d/gpu"
)

// A CmdStream accumulates register writes in the GPU's command-list
// format. Each write is a value word followed by a header word:
//
//	header: |register|mask |extra|reserved|consecutive|
//	  bits:  0-15     16-19 20-27 28-30    31
//
// A burst write carries its remaining values after the header; the
// consecutive bit makes each extra value target the next register. The
// hardware fetches in 8-byte units, so bursts with an even number of
// extra values are padded with a zero word.
//
// The stream only describes writes. Submitting it to the GPU is the
// caller's problem.
type CmdStream struct {
	words []uint32
}

// Reset empties the stream, keeping its storage.
func (cs *CmdStream) Reset() {
	cs.words = cs.words[:0]
}

// Write appends a full-width write of v to reg.
func (cs *CmdStream) Write(reg gpu.Reg, v uint32) {
	cs.WriteMasked(reg, v, 0xF)
}

// WriteMasked appends a write of v to reg, updating only the bytes
// enabled in mask (bit 0 = least significant byte).
func (cs *CmdStream) WriteMasked(reg gpu.Reg, v uint32, mask uint8) {
	cs.words = append(cs.words, v, cmdHeader(reg, mask, 0, false))
}

// WriteSeq appends a burst writing vs[0] to reg, vs[1] to reg+1, and so
// on. The header's extra-count field is 8 bits, capping a burst at 256
// values; longer bursts panic rather than corrupt the header.
func (cs *CmdStream) WriteSeq(reg gpu.Reg, vs ...uint32) {
	if len(vs) == 0 {
		return
	}
	if len(vs)-1 > 0xFF {
		panic("encoding: burst exceeds the header's extra-count field")
	}
	cs.words = append(cs.words, vs[0], cmdHeader(reg, 0xF, len(vs)-1, true))
	cs.words = append(cs.words, vs[1:]...)
	if len(cs.words)%2 != 0 {
		cs.words = append(cs.words, 0)
	}
}

// Words returns the accumulated command words. The slice aliases the
// stream's storage and is invalidated by further writes.
func (cs *CmdStream) Words() []uint32 {
	return cs.words
}

// Bytes returns the accumulated commands as the byte view the GPU's DMA
// engine reads. Same aliasing caveat as Words.
func (cs *CmdStream) Bytes() []byte {
	return safeish.SliceCast[[]byte](cs.words)
}

func cmdHeader(reg gpu.Reg, mask uint8, extra int, consecutive bool) uint32 {
	h := uint32(reg) | uint32(mask&0xF)<<16 | uint32(extra)<<20
	if consecutive {
		h |= 1 << 31
	}
	return h
}

// A RegWrite is one decoded register write.
type RegWrite struct {
	Reg   gpu.Reg
	Mask  uint8
	Value uint32
}

var errTruncatedStream = errors.New("encoding: truncated command stream")

// DecodeCmdStream expands command words back into individual register
// writes, bursts included. It is the round-trip counterpart of CmdStream
// and exists so callers can inspect what a flush produced.
func DecodeCmdStream(words []uint32) ([]RegWrite, error) {
	var ws []RegWrite
	for i := 0; i < len(words); {
		if len(words)-i < 2 {
			return nil, errTruncatedStream
		}
		h := words[i+1]
		reg := gpu.Reg(h & 0xFFFF)
		mask := uint8(h >> 16 & 0xF)
		extra := int(h >> 20 & 0xFF)
		consecutive := h>>31 != 0
		if len(words)-i < 2+extra {
			return nil, fmt.Errorf("%w: burst of %d at word %d", errTruncatedStream, extra, i)
		}
		ws = append(ws, RegWrite{reg, mask, words[i]})
		for j := 1; j <= extra; j++ {
			r := reg
			if consecutive {
				r += gpu.Reg(j)
			}
			ws = append(ws, RegWrite{r, mask, words[i+1+j]})
		}
		i += 2 + extra
		if (2+extra)%2 != 0 {
			i++ // alignment padding
		}
	}
	return ws, nil
}
