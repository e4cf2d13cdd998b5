//go:build !tinygo

package hal

import (
	"sync"

	"fxray/rt/dither"
)

// hostFramebuffer is written by the app and read by the window or terminal
// backend. Present publishes the buffer; readers only ever see presented
// frames.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.frames++
	return nil
}

// PresentRows publishes rows [y0, y1) so a frame shows up while it is still
// being traced.
func (f *hostFramebuffer) PresentRows(y0, y1 int) error {
	y0 = max(y0, 0)
	y1 = min(y1, f.height)
	if y0 >= y1 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front[y0*f.stride:y1*f.stride], f.buf[y0*f.stride:y1*f.stride])
	f.frames++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := dither.From888(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGB565 copies the presented frame into dst and reports the present
// counter, so callers can skip redraws when nothing changed.
func (f *hostFramebuffer) snapshotRGB565(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// expandRGB565 converts little-endian RGB565 pixels in src to RGBA in dst.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := dither.RGB565(uint16(src[i]) | uint16(src[i+1])<<8).RGB()
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
