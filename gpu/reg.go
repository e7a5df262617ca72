package gpu

// Reg is the ID of an internal GPU register, as addressed by the command
// stream. IDs are 16 bits wide on the wire.
type Reg uint16

// Texture combiner registers. Each stage owns five consecutive registers
// (source, operand, combiner, color, scale); stages 0-3 and 4-5 sit in two
// separate banks.
const (
	RegTexEnv0Source Reg = 0x00C0
	RegTexEnv1Source Reg = 0x00C8
	RegTexEnv2Source Reg = 0x00D0
	RegTexEnv3Source Reg = 0x00D8
	RegTexEnv4Source Reg = 0x00F0
	RegTexEnv5Source Reg = 0x00F8

	// Stage bitmasks selecting which stages update the shared
	// previous-combiner buffer.
	RegTexEnvUpdateBuffer Reg = 0x00E0
	// Initial value of the shared previous-combiner buffer.
	RegTexEnvBufferColor Reg = 0x00FD
)

// TexEnvSource returns the first register of the given combiner stage.
func TexEnvSource(stage int) Reg {
	if stage < 4 {
		return RegTexEnv0Source + Reg(stage)*8
	}
	return RegTexEnv4Source + Reg(stage-4)*8
}

// Framebuffer registers.
const (
	RegColorBufRead    Reg = 0x0112
	RegColorBufWrite   Reg = 0x0113
	RegDepthBufRead    Reg = 0x0114
	RegDepthBufWrite   Reg = 0x0115
	RegDepthBufFormat  Reg = 0x0116
	RegColorBufFormat  Reg = 0x0117
	RegFrameBufBlock32 Reg = 0x011B
	RegDepthBufLoc     Reg = 0x011C
	RegColorBufLoc     Reg = 0x011D
	RegFrameBufDim     Reg = 0x011E
)

// Vertex attribute buffer registers. The twelve per-buffer descriptors
// follow RegAttribBuffersFormatHigh, three registers each (offset, then
// the two packed format words).
const (
	RegAttribBuffersLoc        Reg = 0x0200
	RegAttribBuffersFormatLow  Reg = 0x0201
	RegAttribBuffersFormatHigh Reg = 0x0202

	RegVshAttribPermutationLow  Reg = 0x02BB
	RegVshAttribPermutationHigh Reg = 0x02BC
)

// AttribBuffer returns the first register of the i'th buffer descriptor.
func AttribBuffer(i int) Reg {
	return RegAttribBuffersFormatHigh + 1 + Reg(i)*3
}
