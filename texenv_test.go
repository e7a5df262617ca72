package citro3d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Swiftloke/citro3d/gpu"
)

func TestTexEnvInitDefaults(t *testing.T) {
	var env TexEnv
	env.Init()

	s1, s2, s3 := env.SourcesRGB()
	assert.Equal(t, gpu.SrcPrevious, s1)
	assert.Equal(t, gpu.SrcPrimaryColor, s2)
	assert.Equal(t, gpu.SrcPrimaryColor, s3)
	s1, s2, s3 = env.SourcesAlpha()
	assert.Equal(t, gpu.SrcPrevious, s1)
	assert.Equal(t, gpu.SrcPrimaryColor, s2)
	assert.Equal(t, gpu.SrcPrimaryColor, s3)

	o1, o2, o3 := env.OpsRGB()
	assert.Equal(t, gpu.OpRGBSrcColor, o1)
	assert.Equal(t, gpu.OpRGBSrcColor, o2)
	assert.Equal(t, gpu.OpRGBSrcColor, o3)
	a1, a2, a3 := env.OpsAlpha()
	assert.Equal(t, gpu.OpAlphaSrcAlpha, a1)
	assert.Equal(t, gpu.OpAlphaSrcAlpha, a2)
	assert.Equal(t, gpu.OpAlphaSrcAlpha, a3)

	assert.Equal(t, gpu.CombineReplace, env.FuncRGB())
	assert.Equal(t, gpu.CombineReplace, env.FuncAlpha())
	assert.Equal(t, uint32(0xFFFFFFFF), env.Color())
	assert.Equal(t, gpu.ScaleX1, env.ScaleRGB())
	assert.Equal(t, gpu.ScaleX1, env.ScaleAlpha())
}

func TestTexEnvSourceDefaulting(t *testing.T) {
	var env TexEnv
	env.Init()
	env.SetSources(gpu.RGB, gpu.SrcTexture0)

	s1, s2, s3 := env.SourcesRGB()
	assert.Equal(t, gpu.SrcTexture0, s1)
	assert.Equal(t, gpu.SrcPrimaryColor, s2, "omitted source must default, not go stale")
	assert.Equal(t, gpu.SrcPrimaryColor, s3)

	// The alpha channel was not selected and keeps its configuration.
	s1, _, _ = env.SourcesAlpha()
	assert.Equal(t, gpu.SrcPrevious, s1)

	env.SetSources(gpu.Alpha, gpu.SrcTexture1, gpu.SrcConstant)
	s1, s2, s3 = env.SourcesAlpha()
	assert.Equal(t, gpu.SrcTexture1, s1)
	assert.Equal(t, gpu.SrcConstant, s2)
	assert.Equal(t, gpu.SrcPrimaryColor, s3)

	assert.Panics(t, func() {
		env.SetSources(gpu.Both, gpu.SrcTexture0, gpu.SrcTexture1, gpu.SrcTexture2, gpu.SrcTexture3)
	})
}

func TestTexEnvOperandDefaulting(t *testing.T) {
	var env TexEnv
	env.Init()

	env.SetOpRGB(gpu.OpRGBOneMinusSrcColor)
	o1, o2, o3 := env.OpsRGB()
	assert.Equal(t, gpu.OpRGBOneMinusSrcColor, o1)
	assert.Equal(t, gpu.OpRGBSrcColor, o2)
	assert.Equal(t, gpu.OpRGBSrcColor, o3)

	env.SetOpAlpha(gpu.OpAlphaSrcG, gpu.OpAlphaOneMinusSrcAlpha)
	a1, a2, a3 := env.OpsAlpha()
	assert.Equal(t, gpu.OpAlphaSrcG, a1)
	assert.Equal(t, gpu.OpAlphaOneMinusSrcAlpha, a2)
	assert.Equal(t, gpu.OpAlphaSrcAlpha, a3)
}

func TestTexEnvChannelMasking(t *testing.T) {
	var env TexEnv
	env.Init()

	env.SetFunc(gpu.Alpha, gpu.CombineModulate)
	assert.Equal(t, gpu.CombineReplace, env.FuncRGB())
	assert.Equal(t, gpu.CombineModulate, env.FuncAlpha())

	env.SetScale(gpu.RGB, gpu.ScaleX4)
	assert.Equal(t, gpu.ScaleX4, env.ScaleRGB())
	assert.Equal(t, gpu.ScaleX1, env.ScaleAlpha())

	env.SetFunc(gpu.Both, gpu.CombineInterpolate)
	assert.Equal(t, gpu.CombineInterpolate, env.FuncRGB())
	assert.Equal(t, gpu.CombineInterpolate, env.FuncAlpha())
}

func TestTexEnvSetColor(t *testing.T) {
	var env TexEnv
	env.Init()
	env.SetColor(0x80FF40C0)
	assert.Equal(t, uint32(0x80FF40C0), env.Color())
}

func TestRGBA8(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       uint32
	}{
		{"opaque white", 1, 1, 1, 1, 0xFFFFFFFF},
		{"opaque red", 1, 0, 0, 1, 0xFF0000FF},
		{"translucent blue", 0, 0, 1, 0.5, 0x80FF0000},
		{"rounds to nearest", 0.5, 0, 0, 1, 0xFF000080},
		{"clamps below", -0.25, 0, 0, 1, 0xFF000000},
		{"clamps above", 1.5, 1.5, 1.5, 1.5, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rgba8(tt.r, tt.g, tt.b, tt.a))
		})
	}
}
