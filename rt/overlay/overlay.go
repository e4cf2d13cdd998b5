// Package overlay draws text on top of a rendered RGB565 frame: the status
// bar shown after a render and the full-screen message used on panic.
package overlay

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"fxray/rt/dither"
	"fxray/rt/fonts/font6x8"
	"fxray/rt/frame"
)

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Amber = color.RGBA{R: 255, G: 176, B: 0, A: 255}
)

// Display adapts an RGB565 buffer to drivers.Displayer. Pixels with zero
// alpha are skipped.
type Display struct {
	T *frame.RGB565Target
}

var _ drivers.Displayer = (*Display)(nil)

func New(t *frame.RGB565Target) *Display { return &Display{T: t} }

func (d *Display) Size() (x, y int16) {
	if d == nil || d.T == nil {
		return 0, 0
	}
	return int16(d.T.W), int16(d.T.H)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d == nil || d.T == nil || c.A == 0 {
		return
	}
	d.T.SetPixel565(int(x), int(y), dither.From888(c.R, c.G, c.B))
}

func (d *Display) Display() error { return nil }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d == nil || d.T == nil {
		return nil
	}
	x0 := clampInt(int(x), 0, d.T.W)
	y0 := clampInt(int(y), 0, d.T.H)
	x1 := clampInt(int(x)+int(width), 0, d.T.W)
	y1 := clampInt(int(y)+int(height), 0, d.T.H)
	p := dither.From888(c.R, c.G, c.B)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			d.T.SetPixel565(xx, yy, p)
		}
	}
	return nil
}

// Columns is the number of font cells that fit across the display.
func (d *Display) Columns() int {
	w, _ := d.Size()
	return int(w) / font6x8.Width
}

// StatusLine paints a one-cell-high bar at the bottom of the display and
// writes text into it, truncated to the display width.
func StatusLine(d *Display, text string, fg, bg color.RGBA) {
	w, h := d.Size()
	if w <= 0 || h < font6x8.Height {
		return
	}
	y := h - font6x8.Height
	_ = d.FillRectangle(0, y, w, font6x8.Height, bg)
	line, _ := takeRunes(text, d.Columns())
	tinyfont.WriteLine(d, font6x8.Font, 0, y+font6x8.Height-1, line, fg)
}

// Lines clears the display to bg and writes each line from the top, wrapping
// long lines at the display width. It returns the number of screen rows
// used; text past the bottom edge is dropped.
func Lines(d *Display, lines []string, fg, bg color.RGBA) int {
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, bg)

	rows := int(h) / font6x8.Height
	n := 0
	for _, line := range Wrap(lines, d.Columns()) {
		if n >= rows {
			break
		}
		y := int16(n*font6x8.Height + font6x8.Height - 1)
		tinyfont.WriteLine(d, font6x8.Font, 0, y, line, fg)
		n++
	}
	return n
}

// Wrap splits every line into chunks of at most cols runes. Empty lines are
// kept; leading spaces on continuation chunks are dropped.
func Wrap(lines []string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var out []string
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		for len(line) > 0 {
			chunk, rest := takeRunes(line, cols)
			out = append(out, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	return out
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
