//go:build tinygo

package hal

import "fxray/rt/dither"

// memFramebuffer is a RAM-only framebuffer for targets without a panel. The
// app still renders into it and reports stats over the logger.
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := dither.From888(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error { return nil }
