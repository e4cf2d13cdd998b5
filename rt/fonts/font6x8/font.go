package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 6x8 monospace bitmap font covering printable ASCII. Each glyph
// is 5x7 pixels plus one column and one row of spacing.
//
// It implements tinyfont.Fonter. Concurrent use is not safe because the
// returned glyph is reused.
var Font tinyfont.Fonter = &font6x8{}

const (
	Width  = 6
	Height = 8

	first = 0x20
	last  = 0x7e
)

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	cols := columns(g.r)
	for col, bits := range cols {
		// Bit 0 is the top row.
		for row := 0; row < 7; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-7+int16(row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// columns returns the five column bytes of r; runes outside ASCII draw as '?'.
func columns(r rune) []byte {
	if r < first || r > last {
		r = '?'
	}
	i := int(r-first) * 5
	return glyphData[i : i+5]
}
