package frame

import (
	"image"
	"image/color"

	"fxray/rt/dither"
)

// Target is a pixel sink. Implementations clip out-of-bounds coordinates and
// must accept concurrent SetPixel565 calls for different rows.
type Target interface {
	Size() (w, h int)
	SetPixel565(x, y int, p dither.RGB565)
}

// RGB565Target writes little-endian RGB565 into a caller-provided buffer,
// the layout hal.Framebuffer exposes.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) SetPixel565(x, y int, p dither.RGB565) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel565 reads back the pixel at (x, y), or 0 when out of bounds.
func (t *RGB565Target) Pixel565(x, y int) dither.RGB565 {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0
	}
	return dither.RGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

func (t *RGB565Target) Clear(p dither.RGB565) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			t.SetPixel565(x, y, p)
		}
	}
}

// ImageTarget renders into an in-memory RGBA image, expanding each RGB565
// pixel to 8 bits per channel.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel565(x, y int, p dither.RGB565) {
	r, g, b := p.RGB()
	t.Img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}
