// Package citro3d assembles fixed-function GPU state on the CPU. Callers
// describe vertex buffer layouts and texture combiner stages through the
// types here; a Context tracks which descriptions are current, detects
// what changed since the last flush, and serializes exactly the changed
// registers into a command stream for a submission layer to issue.
//
// Nothing in this package talks to the GPU, allocates vertex or pixel
// memory, or blocks. All state belongs to the single goroutine driving
// the rendering context; nothing is locked.
package citro3d

import (
	"errors"

	"honnef.co/go/color"

	"github.com/Swiftloke/citro3d/encoding"
	"github.com/Swiftloke/citro3d/gpu"
)

var (
	ErrStageRange = errors.New("citro3d: combiner stage index out of range")
	ErrStageMask  = errors.New("citro3d: update mask selects nonexistent stages")
)

// A Context owns the combiner stage array and the pointers to the current
// buffer table, attribute table and framebuffer. It replaces what would
// otherwise be process-wide "current" state: callers hold a Context and
// pass nothing implicitly.
type Context struct {
	bufInfo  *BufInfo
	attrInfo *AttrInfo
	frameBuf *FrameBuf

	env    [gpu.TexEnvStages]TexEnv
	synced [gpu.TexEnvStages]uint32

	updateRGB   uint8
	updateAlpha uint8
	bufColor    uint32

	bufInfoDirty   bool
	attrInfoDirty  bool
	frameBufDirty  bool
	texEnvBufDirty bool

	generation uint64
}

// NewContext returns a context with every combiner stage at its defaults
// and all state marked dirty, so the first flush emits a complete
// configuration.
func NewContext() *Context {
	ctx := new(Context)
	for i := range ctx.env {
		ctx.env[i].Init()
	}
	ctx.texEnvBufDirty = true
	return ctx
}

// TexEnv returns the live stage at the given index. Edits through the
// stage's setters are picked up by the next flush automatically.
func (ctx *Context) TexEnv(id int) (*TexEnv, error) {
	if id < 0 || id >= gpu.TexEnvStages {
		return nil, ErrStageRange
	}
	return &ctx.env[id], nil
}

// SetTexEnv copies env into the stage slot at the given index, replacing
// the previous configuration wholesale.
func (ctx *Context) SetTexEnv(id int, env *TexEnv) error {
	if id < 0 || id >= gpu.TexEnvStages {
		return ErrStageRange
	}
	rev := ctx.env[id].rev
	ctx.env[id] = *env
	ctx.env[id].rev = rev + 1
	return nil
}

// DirtyTexEnv forces the stage to be rewritten by the next flush. The
// setters mark stages on their own; this is for callers that poke a
// stage's state some other way.
func (ctx *Context) DirtyTexEnv(id int) error {
	if id < 0 || id >= gpu.TexEnvStages {
		return ErrStageRange
	}
	ctx.env[id].rev++
	return nil
}

// StageDirty reports whether the stage has changed since the last flush.
func (ctx *Context) StageDirty(id int) (bool, error) {
	if id < 0 || id >= gpu.TexEnvStages {
		return false, ErrStageRange
	}
	return ctx.env[id].rev != ctx.synced[id], nil
}

// TexEnvBufUpdate selects which stages write their output into the
// shared previous-combiner buffer, for the channels in mode. Only stages
// 1 through 4 can write the buffer; mask bit 0 is stage 1.
func (ctx *Context) TexEnvBufUpdate(mode gpu.TexEnvMode, mask int) error {
	if mask&^0xF != 0 {
		return ErrStageMask
	}
	if mode&gpu.RGB != 0 {
		ctx.updateRGB = uint8(mask)
	}
	if mode&gpu.Alpha != 0 {
		ctx.updateAlpha = uint8(mask)
	}
	ctx.texEnvBufDirty = true
	return nil
}

// TexEnvBufMasks returns the per-channel stage masks set by
// TexEnvBufUpdate.
func (ctx *Context) TexEnvBufMasks() (maskRGB, maskAlpha uint8) {
	return ctx.updateRGB, ctx.updateAlpha
}

// TexEnvBufColor sets the value the shared previous-combiner buffer
// holds before any stage writes to it, as 0xAABBGGRR.
func (ctx *Context) TexEnvBufColor(rgba uint32) {
	ctx.bufColor = rgba
	ctx.texEnvBufDirty = true
}

// TexEnvBufColorOf is TexEnvBufColor for a color value.
func (ctx *Context) TexEnvBufColorOf(c *color.Color) {
	ctx.TexEnvBufColor(packRGBA8(c))
}

// BufInfo returns the current buffer descriptor table, or nil.
func (ctx *Context) BufInfo() *BufInfo { return ctx.bufInfo }

// SetBufInfo installs info as the current buffer descriptor table. The
// table is not validated here; Add already did.
func (ctx *Context) SetBufInfo(info *BufInfo) {
	ctx.bufInfo = info
	ctx.bufInfoDirty = true
}

// AttrInfo returns the current attribute table, or nil.
func (ctx *Context) AttrInfo() *AttrInfo { return ctx.attrInfo }

// SetAttrInfo installs info as the current attribute table.
func (ctx *Context) SetAttrInfo(info *AttrInfo) {
	ctx.attrInfo = info
	ctx.attrInfoDirty = true
}

// FrameBuf returns the current framebuffer, or nil.
func (ctx *Context) FrameBuf() *FrameBuf { return ctx.frameBuf }

// SetFrameBuf installs fb as the current framebuffer.
func (ctx *Context) SetFrameBuf(fb *FrameBuf) {
	ctx.frameBuf = fb
	ctx.frameBufDirty = true
}

// Generation returns the number of flushes performed. A caller that
// records the generation alongside derived state can tell whether that
// state predates the registers' current contents.
func (ctx *Context) Generation() uint64 {
	return ctx.generation
}

// Flush serializes everything that changed since the last flush into cs
// and increments the generation. Stages flushed here are clean until
// their next edit.
func (ctx *Context) Flush(cs *encoding.CmdStream) {
	if ctx.bufInfoDirty && ctx.bufInfo != nil {
		info := ctx.bufInfo
		cs.Write(gpu.RegAttribBuffersLoc, encoding.PackBufBase(info.Base()))
		for i := 0; i < info.Len(); i++ {
			b := info.Buf(i)
			cs.WriteSeq(gpu.AttribBuffer(i), b.Offset, b.Flags[0], b.Flags[1])
		}
		ctx.bufInfoDirty = false
	}
	if ctx.attrInfoDirty && ctx.attrInfo != nil {
		w := ctx.attrInfo.FormatWords()
		cs.WriteSeq(gpu.RegAttribBuffersFormatLow, w[0], w[1])
		p := ctx.attrInfo.Permutation()
		cs.WriteSeq(gpu.RegVshAttribPermutationLow, uint32(p), uint32(p>>32))
		ctx.attrInfoDirty = false
	}
	for i := range ctx.env {
		if ctx.env[i].rev == ctx.synced[i] {
			continue
		}
		w := ctx.env[i].words()
		cs.WriteSeq(gpu.TexEnvSource(i), w[:]...)
		ctx.synced[i] = ctx.env[i].rev
	}
	if ctx.texEnvBufDirty {
		// The update masks live in byte 1 of the register; the rest of
		// it belongs to fog state this library doesn't own.
		cs.WriteMasked(gpu.RegTexEnvUpdateBuffer,
			encoding.TevUpdateBufferWord(ctx.updateRGB, ctx.updateAlpha), 0x2)
		cs.Write(gpu.RegTexEnvBufferColor, ctx.bufColor)
		ctx.texEnvBufDirty = false
	}
	if ctx.frameBufDirty && ctx.frameBuf != nil {
		ctx.flushFrameBuf(cs)
		ctx.frameBufDirty = false
	}
	ctx.generation++
}

func (ctx *Context) flushFrameBuf(cs *encoding.CmdStream) {
	fb := ctx.frameBuf
	cs.Write(gpu.RegDepthBufLoc, fb.DepthBuf>>3)
	cs.Write(gpu.RegColorBufLoc, fb.ColorBuf>>3)
	cs.Write(gpu.RegFrameBufDim,
		uint32(fb.Width)|uint32(fb.Height-1)<<12|1<<24)
	cs.Write(gpu.RegDepthBufFormat, uint32(fb.DepthFmt))
	// Format word: pixel size code (0 = 16-bit, 1 = 24-bit, 2 = 32-bit)
	// in the low bits, format in bits 16-18.
	cs.Write(gpu.RegColorBufFormat,
		uint32(fb.ColorFmt)<<16|uint32(fb.ColorFmt.Bytes()-2))
	if fb.Block32 {
		cs.Write(gpu.RegFrameBufBlock32, 1)
	} else {
		cs.Write(gpu.RegFrameBufBlock32, 0)
	}
	cs.Write(gpu.RegColorBufRead, uint32(fb.colorMask))
	cs.Write(gpu.RegColorBufWrite, uint32(fb.colorMask))
	cs.Write(gpu.RegDepthBufRead, uint32(fb.depthMask))
	cs.Write(gpu.RegDepthBufWrite, uint32(fb.depthMask))
}
