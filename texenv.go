package citro3d

import (
	"honnef.co/go/color"

	"github.com/Swiftloke/citro3d/encoding"
	"github.com/Swiftloke/citro3d/gpu"
)

// A TexEnv holds the complete configuration of one combiner stage: the
// packed source, operand, function and scale fields for the color and
// alpha pipelines, plus the stage's constant color. The zero value is
// all-zero hardware state; Init produces the documented defaults.
//
// Every setter bumps an internal revision, which is how a Context
// detects that a stage it flushed earlier has been edited since. Callers
// that write the packed fields some other way must call
// Context.DirtyTexEnv themselves.
type TexEnv struct {
	srcRGB, srcAlpha     uint16
	opRGB, opAlpha       uint16
	funcRGB, funcAlpha   gpu.CombineFunc
	color                uint32
	scaleRGB, scaleAlpha gpu.TevScale

	rev uint32
}

// Init resets the stage to its defaults: both channels source the
// previous stage's output, operands are the identity transform, the
// combine function is replace, the constant color is opaque white and
// the output scale is 1.
func (env *TexEnv) Init() {
	env.SetSources(gpu.Both, gpu.SrcPrevious, 0, 0)
	env.SetOpRGB(gpu.OpRGBSrcColor, 0, 0)
	env.SetOpAlpha(gpu.OpAlphaSrcAlpha, 0, 0)
	env.SetFunc(gpu.Both, gpu.CombineReplace)
	env.SetColor(0xFFFFFFFF)
	env.SetScale(gpu.Both, gpu.ScaleX1)
}

// SetSources selects where the stage's operands come from, for the
// channels in mode. Omitted second and third sources default to the
// primary vertex color.
func (env *TexEnv) SetSources(mode gpu.TexEnvMode, s1 gpu.TevSrc, rest ...gpu.TevSrc) {
	s2, s3 := gpu.SrcPrimaryColor, gpu.SrcPrimaryColor
	switch len(rest) {
	case 0:
	case 1:
		s2 = rest[0]
	case 2:
		s2, s3 = rest[0], rest[1]
	default:
		panic("citro3d: a combiner stage has at most three sources")
	}
	w := encoding.PackTevSources(s1, s2, s3)
	if mode&gpu.RGB != 0 {
		env.srcRGB = w
	}
	if mode&gpu.Alpha != 0 {
		env.srcAlpha = w
	}
	env.rev++
}

// SetOpRGB selects the transforms applied to the color operands before
// the combine function runs. Omitted operands default to the source
// color as-is.
func (env *TexEnv) SetOpRGB(o1 gpu.TevOpRGB, rest ...gpu.TevOpRGB) {
	o2, o3 := gpu.OpRGBSrcColor, gpu.OpRGBSrcColor
	switch len(rest) {
	case 0:
	case 1:
		o2 = rest[0]
	case 2:
		o2, o3 = rest[0], rest[1]
	default:
		panic("citro3d: a combiner stage has at most three operands")
	}
	env.opRGB = encoding.PackTevOperands(uint8(o1), uint8(o2), uint8(o3))
	env.rev++
}

// SetOpAlpha is SetOpRGB for the alpha channel; omitted operands default
// to the source alpha as-is.
func (env *TexEnv) SetOpAlpha(o1 gpu.TevOpAlpha, rest ...gpu.TevOpAlpha) {
	o2, o3 := gpu.OpAlphaSrcAlpha, gpu.OpAlphaSrcAlpha
	switch len(rest) {
	case 0:
	case 1:
		o2 = rest[0]
	case 2:
		o2, o3 = rest[0], rest[1]
	default:
		panic("citro3d: a combiner stage has at most three operands")
	}
	env.opAlpha = encoding.PackTevOperands(uint8(o1), uint8(o2), uint8(o3))
	env.rev++
}

// SetFunc selects the combine function for the channels in mode.
func (env *TexEnv) SetFunc(mode gpu.TexEnvMode, fn gpu.CombineFunc) {
	if mode&gpu.RGB != 0 {
		env.funcRGB = fn
	}
	if mode&gpu.Alpha != 0 {
		env.funcAlpha = fn
	}
	env.rev++
}

// SetColor sets the stage's constant color, as 0xAABBGGRR.
func (env *TexEnv) SetColor(rgba uint32) {
	env.color = rgba
	env.rev++
}

// SetColorOf sets the stage's constant color from a color value.
func (env *TexEnv) SetColorOf(c *color.Color) {
	env.SetColor(packRGBA8(c))
}

// SetScale selects the output multiplier for the channels in mode.
func (env *TexEnv) SetScale(mode gpu.TexEnvMode, scale gpu.TevScale) {
	if mode&gpu.RGB != 0 {
		env.scaleRGB = scale
	}
	if mode&gpu.Alpha != 0 {
		env.scaleAlpha = scale
	}
	env.rev++
}

// SourcesRGB returns the color channel's three source selectors.
func (env *TexEnv) SourcesRGB() (s1, s2, s3 gpu.TevSrc) {
	return encoding.UnpackTevSources(env.srcRGB)
}

// SourcesAlpha returns the alpha channel's three source selectors.
func (env *TexEnv) SourcesAlpha() (s1, s2, s3 gpu.TevSrc) {
	return encoding.UnpackTevSources(env.srcAlpha)
}

// OpsRGB returns the color channel's three operand transforms.
func (env *TexEnv) OpsRGB() (o1, o2, o3 gpu.TevOpRGB) {
	a, b, c := encoding.UnpackTevOperands(env.opRGB)
	return gpu.TevOpRGB(a), gpu.TevOpRGB(b), gpu.TevOpRGB(c)
}

// OpsAlpha returns the alpha channel's three operand transforms.
func (env *TexEnv) OpsAlpha() (o1, o2, o3 gpu.TevOpAlpha) {
	a, b, c := encoding.UnpackTevOperands(env.opAlpha)
	return gpu.TevOpAlpha(a), gpu.TevOpAlpha(b), gpu.TevOpAlpha(c)
}

// FuncRGB returns the color channel's combine function.
func (env *TexEnv) FuncRGB() gpu.CombineFunc { return env.funcRGB }

// FuncAlpha returns the alpha channel's combine function.
func (env *TexEnv) FuncAlpha() gpu.CombineFunc { return env.funcAlpha }

// Color returns the stage's constant color.
func (env *TexEnv) Color() uint32 { return env.color }

// ScaleRGB returns the color channel's output multiplier.
func (env *TexEnv) ScaleRGB() gpu.TevScale { return env.scaleRGB }

// ScaleAlpha returns the alpha channel's output multiplier.
func (env *TexEnv) ScaleAlpha() gpu.TevScale { return env.scaleAlpha }

// words returns the stage's five register values in register order:
// source, operand, combiner, color, scale.
func (env *TexEnv) words() [5]uint32 {
	return [5]uint32{
		encoding.TevSourceWord(env.srcRGB, env.srcAlpha),
		encoding.TevOperandWord(env.opRGB, env.opAlpha),
		encoding.TevCombinerWord(env.funcRGB, env.funcAlpha),
		env.color,
		encoding.TevScaleWord(env.scaleRGB, env.scaleAlpha),
	}
}

// packRGBA8 converts a color to the hardware's 8-bit-per-channel word,
// red in the low byte.
func packRGBA8(c *color.Color) uint32 {
	cc := c.Convert(color.SRGB)
	return rgba8(cc.Values[0], cc.Values[1], cc.Values[2], cc.Values[3])
}

// rgba8 packs sRGB channel values, clamped to [0, 1] and rounded to the
// nearest step, red in the low byte.
func rgba8(r, g, b, a float64) uint32 {
	channel := func(v float64) uint32 {
		return uint32(min(max(v, 0), 1)*255 + 0.5)
	}
	return channel(r) | channel(g)<<8 | channel(b)<<16 | channel(a)<<24
}
