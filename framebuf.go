package citro3d

import "github.com/Swiftloke/citro3d/gpu"

// ClearBits selects which of a framebuffer's attachments to clear.
type ClearBits uint8

const (
	ClearColor ClearBits = 1 << 0
	ClearDepth ClearBits = 1 << 1
	ClearAll   ClearBits = ClearColor | ClearDepth
)

// A FrameBuf describes a render target: the addresses and formats of its
// color and depth/stencil buffers and the render area dimensions. It does
// not own the buffer memory and never touches it; allocation and display
// transfer belong to the caller.
type FrameBuf struct {
	ColorBuf uint32
	DepthBuf uint32
	Width    uint16
	Height   uint16
	ColorFmt gpu.ColorFmt
	DepthFmt gpu.DepthFmt
	// Block32 selects the 32x32 tiling mode instead of 8x8.
	Block32 bool

	colorMask uint8
	depthMask uint8
}

// SetAttrib sets the render area dimensions and tiling mode.
func (fb *FrameBuf) SetAttrib(width, height uint16, block32 bool) {
	fb.Width = width
	fb.Height = height
	fb.Block32 = block32
}

// SetColor assigns the color buffer. An addr of zero detaches it and
// disables color writes.
func (fb *FrameBuf) SetColor(addr uint32, fmt gpu.ColorFmt) {
	if addr != 0 {
		fb.ColorBuf = addr
		fb.ColorFmt = fmt
		fb.colorMask = 0xF
	} else {
		fb.ColorBuf = 0
		fb.ColorFmt = gpu.ColorRGBA8
		fb.colorMask = 0
	}
}

// SetDepth assigns the depth buffer. Depending on the format it doubles
// as the stencil buffer. An addr of zero detaches it and disables depth
// and stencil writes.
func (fb *FrameBuf) SetDepth(addr uint32, fmt gpu.DepthFmt) {
	if addr != 0 {
		fb.DepthBuf = addr
		fb.DepthFmt = fmt
		if fmt == gpu.Depth24Stencil8 {
			fb.depthMask = 0x3
		} else {
			fb.depthMask = 0x2
		}
	} else {
		fb.DepthBuf = 0
		fb.DepthFmt = gpu.Depth24
		fb.depthMask = 0
	}
}

// ColorMask returns the color write-enable mask, one bit per byte lane.
func (fb *FrameBuf) ColorMask() uint8 { return fb.colorMask }

// DepthMask returns the depth/stencil write-enable mask: bit 1 enables
// depth writes, bit 0 stencil writes.
func (fb *FrameBuf) DepthMask() uint8 { return fb.depthMask }

// CalcColorBufSize returns the byte size of a color buffer with the given
// dimensions and format.
func CalcColorBufSize(width, height int, fmt gpu.ColorFmt) int {
	return width * height * fmt.Bytes()
}

// CalcDepthBufSize returns the byte size of a depth buffer with the given
// dimensions and format.
func CalcDepthBufSize(width, height int, fmt gpu.DepthFmt) int {
	return width * height * fmt.Bytes()
}
