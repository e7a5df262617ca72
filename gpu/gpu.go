// Package gpu defines the PICA200's fixed-function selector codes and
// register file. The values here are consumed verbatim by the hardware;
// none of them may be renumbered.
package gpu

// TexEnvStages is the number of texture combiner stages the hardware
// provides.
const TexEnvStages = 6

// TexEnvMode selects which combiner channels an operation applies to.
type TexEnvMode uint8

const (
	// Color channel.
	RGB TexEnvMode = 1 << 0
	// Alpha channel.
	Alpha TexEnvMode = 1 << 1
	// Both channels at once.
	Both TexEnvMode = RGB | Alpha
)

// TevSrc selects where a combiner operand's value comes from.
type TevSrc uint8

const (
	// Interpolated vertex color.
	SrcPrimaryColor TevSrc = 0x0
	// Primary color computed by fragment lighting.
	SrcFragmentPrimaryColor TevSrc = 0x1
	// Secondary (specular) color computed by fragment lighting.
	SrcFragmentSecondaryColor TevSrc = 0x2
	// Texture unit 0.
	SrcTexture0 TevSrc = 0x3
	// Texture unit 1.
	SrcTexture1 TevSrc = 0x4
	// Texture unit 2.
	SrcTexture2 TevSrc = 0x5
	// Texture unit 3 (procedural texture unit).
	SrcTexture3 TevSrc = 0x6
	// The shared previous-combiner buffer. Which stages write to it is
	// controlled per channel; see Context.TexEnvBufUpdate.
	SrcPreviousBuffer TevSrc = 0xD
	// The stage's constant color.
	SrcConstant TevSrc = 0xE
	// Output of the previous stage.
	SrcPrevious TevSrc = 0xF
)

// TevOpRGB transforms a color operand before the combine function sees it.
type TevOpRGB uint8

const (
	OpRGBSrcColor         TevOpRGB = 0x0
	OpRGBOneMinusSrcColor TevOpRGB = 0x1
	OpRGBSrcAlpha         TevOpRGB = 0x2
	OpRGBOneMinusSrcAlpha TevOpRGB = 0x3
	OpRGBSrcR             TevOpRGB = 0x4
	OpRGBOneMinusSrcR     TevOpRGB = 0x5
	OpRGBSrcG             TevOpRGB = 0x8
	OpRGBOneMinusSrcG     TevOpRGB = 0x9
	OpRGBSrcB             TevOpRGB = 0xC
	OpRGBOneMinusSrcB     TevOpRGB = 0xD
)

// TevOpAlpha transforms an alpha operand before the combine function sees
// it.
type TevOpAlpha uint8

const (
	OpAlphaSrcAlpha         TevOpAlpha = 0x0
	OpAlphaOneMinusSrcAlpha TevOpAlpha = 0x1
	OpAlphaSrcR             TevOpAlpha = 0x2
	OpAlphaOneMinusSrcR     TevOpAlpha = 0x3
	OpAlphaSrcG             TevOpAlpha = 0x4
	OpAlphaOneMinusSrcG     TevOpAlpha = 0x5
	OpAlphaSrcB             TevOpAlpha = 0x6
	OpAlphaOneMinusSrcB     TevOpAlpha = 0x7
)

// CombineFunc combines a stage's (up to) three transformed operands into
// the stage output.
type CombineFunc uint8

const (
	// The first operand, unchanged.
	CombineReplace CombineFunc = 0x0
	// op1 * op2.
	CombineModulate CombineFunc = 0x1
	// op1 + op2.
	CombineAdd CombineFunc = 0x2
	// op1 + op2 - 0.5.
	CombineAddSigned CombineFunc = 0x3
	// op1 * op3 + op2 * (1 - op3).
	CombineInterpolate CombineFunc = 0x4
	// op1 - op2.
	CombineSubtract CombineFunc = 0x5
	// 4 * dot(op1 - 0.5, op2 - 0.5), broadcast to RGB.
	CombineDot3RGB CombineFunc = 0x6
	// Like CombineDot3RGB, but broadcast to RGBA.
	CombineDot3RGBA CombineFunc = 0x7
	// op1 * op2 + op3.
	CombineMultiplyAdd CombineFunc = 0x8
	// (op1 + op2) * op3.
	CombineAddMultiply CombineFunc = 0x9
)

// TevScale multiplies a stage's output. Only the three listed factors are
// representable.
type TevScale uint8

const (
	ScaleX1 TevScale = 0x0
	ScaleX2 TevScale = 0x1
	ScaleX4 TevScale = 0x2
)

// AttribFmt is the component type of a vertex attribute.
type AttribFmt uint8

const (
	FmtByte         AttribFmt = 0x0
	FmtUnsignedByte AttribFmt = 0x1
	FmtShort        AttribFmt = 0x2
	FmtFloat        AttribFmt = 0x3
)

// ColorFmt is the pixel format of a color render buffer.
type ColorFmt uint8

const (
	ColorRGBA8    ColorFmt = 0x0
	ColorRGB8     ColorFmt = 0x1
	ColorRGBA5551 ColorFmt = 0x2
	ColorRGB565   ColorFmt = 0x3
	ColorRGBA4    ColorFmt = 0x4
)

// Bytes returns the size of one pixel in the format.
func (f ColorFmt) Bytes() int {
	switch f {
	case ColorRGBA8:
		return 4
	case ColorRGB8:
		return 3
	default:
		return 2
	}
}

// DepthFmt is the pixel format of a depth (and optionally stencil) render
// buffer.
type DepthFmt uint8

const (
	Depth16         DepthFmt = 0x0
	Depth24         DepthFmt = 0x2
	Depth24Stencil8 DepthFmt = 0x3
)

// Bytes returns the size of one pixel in the format.
func (f DepthFmt) Bytes() int {
	switch f {
	case Depth16:
		return 2
	case Depth24:
		return 3
	default:
		return 4
	}
}
