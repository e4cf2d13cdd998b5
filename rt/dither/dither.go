// Package dither converts linear fixed-point colors to RGB565 with a 1-D
// error-diffusion carry.
//
// The carry is plain state handed from one pixel to the next in raster order.
// Callers own it, so a frame can be split into scanlines that each start
// from a zero Carry.
package dither

import "fxray/rt/fixed"

// RGB565 is a packed 5-6-5 pixel.
type RGB565 uint16

// Carry is the quantization error forwarded to the next pixel.
type Carry fixed.Vec3

// Channel maxima.
const (
	MaxR = 31
	MaxG = 63
	MaxB = 31
)

var (
	levelR = fixed.FromInt(MaxR)
	levelG = fixed.FromInt(MaxG)
	levelB = fixed.FromInt(MaxB)
)

// Step returns the value of one quantization step per channel.
func Step() fixed.Vec3 {
	return fixed.V3(fixed.Div(fixed.One, levelR), fixed.Div(fixed.One, levelG), fixed.Div(fixed.One, levelB))
}

// Quantize adds carry to c, clamps to [0, One], truncates each channel to its
// bit depth and returns the pixel with the error left over.
func Quantize(c fixed.Vec3, carry Carry) (RGB565, Carry) {
	v := c.Add(fixed.Vec3(carry)).Clamp(0, fixed.One)

	r, er := channel(v.X, levelR)
	g, eg := channel(v.Y, levelG)
	b, eb := channel(v.Z, levelB)
	return Pack565(r, g, b), Carry{X: er, Y: eg, Z: eb}
}

func channel(v, max fixed.Scalar) (int, fixed.Scalar) {
	q := fixed.Floor(fixed.Mul(v, max))
	return q.ToInt(), fixed.Sub(v, fixed.Div(q, max))
}

// Pack565 packs channel levels, masking each to its width.
func Pack565(r, g, b int) RGB565 {
	return RGB565(uint16(r&MaxR)<<11 | uint16(g&MaxG)<<5 | uint16(b&MaxB))
}

// From888 packs 8-bit channels by truncation.
func From888(r, g, b uint8) RGB565 {
	return Pack565(int(r>>3), int(g>>2), int(b>>3))
}

// Levels returns the raw channel levels.
func (p RGB565) Levels() (r, g, b int) {
	return int(p>>11) & MaxR, int(p>>5) & MaxG, int(p) & MaxB
}

// RGB expands p to 8-bit channels, replicating high bits into the low ones.
func (p RGB565) RGB() (r, g, b uint8) {
	r5, g6, b5 := p.Levels()
	return uint8(r5<<3 | r5>>2), uint8(g6<<2 | g6>>4), uint8(b5<<3 | b5>>2)
}
