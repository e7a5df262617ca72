package encoding

import "github.com/Swiftloke/citro3d/gpu"

// Combiner operands travel in packed triples, one 4-bit field per
// operand:
//
//	triple: |op1|op2|op3|
//	  bits:  0-3 4-7 8-11
//
// Source triples use the same layout in a 16-bit field; operand triples
// occupy 12 bits.

// PackTevSources packs a stage's three source selectors.
func PackTevSources(s1, s2, s3 gpu.TevSrc) uint16 {
	return uint16(s1&0xF) | uint16(s2&0xF)<<4 | uint16(s3&0xF)<<8
}

// UnpackTevSources is the inverse of PackTevSources.
func UnpackTevSources(w uint16) (s1, s2, s3 gpu.TevSrc) {
	return gpu.TevSrc(w & 0xF), gpu.TevSrc(w >> 4 & 0xF), gpu.TevSrc(w >> 8 & 0xF)
}

// PackTevOperands packs a triple of operand transform codes. Color and
// alpha codes share the layout, so both channels funnel through here.
func PackTevOperands(o1, o2, o3 uint8) uint16 {
	return uint16(o1&0xF) | uint16(o2&0xF)<<4 | uint16(o3&0xF)<<8
}

// UnpackTevOperands is the inverse of PackTevOperands.
func UnpackTevOperands(w uint16) (o1, o2, o3 uint8) {
	return uint8(w & 0xF), uint8(w >> 4 & 0xF), uint8(w >> 8 & 0xF)
}

// The five per-stage registers pair the color and alpha channels in one
// word each: color in the low half, alpha in the high half (bit 12 for
// the operand word, bit 16 for the others).

// TevSourceWord builds the stage source register from the two packed
// source triples.
func TevSourceWord(srcRGB, srcAlpha uint16) uint32 {
	return uint32(srcRGB&0xFFF) | uint32(srcAlpha&0xFFF)<<16
}

// TevOperandWord builds the stage operand register from the two packed
// operand triples.
func TevOperandWord(opRGB, opAlpha uint16) uint32 {
	return uint32(opRGB&0xFFF) | uint32(opAlpha&0xFFF)<<12
}

// TevCombinerWord builds the stage combine function register.
func TevCombinerWord(fnRGB, fnAlpha gpu.CombineFunc) uint32 {
	return uint32(fnRGB) | uint32(fnAlpha)<<16
}

// TevScaleWord builds the stage output scale register.
func TevScaleWord(scaleRGB, scaleAlpha gpu.TevScale) uint32 {
	return uint32(scaleRGB&0x3) | uint32(scaleAlpha&0x3)<<16
}

// TevUpdateBufferWord builds the shared-buffer update register from the
// per-channel stage masks. Each mask covers stages 1-4 in bits 0-3; the
// earlier and later stages cannot write the buffer.
func TevUpdateBufferWord(maskRGB, maskAlpha uint8) uint32 {
	return uint32(maskRGB&0xF)<<8 | uint32(maskAlpha&0xF)<<12
}
