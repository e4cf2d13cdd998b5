//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"
)

// TermConfig controls the terminal runner.
type TermConfig struct {
	Width  int
	Height int
	Hz     int
}

// RunTerminal shows the framebuffer in the current terminal using half-block
// cells (two pixels per cell) and forwards key presses. Log lines are held
// back until the terminal is restored.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	var logs bytes.Buffer
	err = runTerminal(ctx, s, newApp, cfg, &logs)
	s.Fini()
	os.Stdout.Write(logs.Bytes())
	return err
}

func runTerminal(ctx context.Context, s tcell.Screen, newApp func(HAL) func() error, cfg TermConfig, logs *bytes.Buffer) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	h := newHost(cfg.Width, cfg.Height, logs)
	step := newApp(h)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	fb := h.fb
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	scratch := make([]byte, len(fb.buf))
	var shown uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				shown = 0
			case *tcell.EventKey:
				if k, ok := termKey(ev); ok {
					h.kbd.emit(k)
				}
			}
		case <-t.C:
			h.t.tick()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if n := fb.presented(); n != shown {
				shown = fb.snapshotRGB565(scratch)
				expandRGB565(img.Pix, scratch)
				drawHalfBlocks(s, img)
			}
		}
	}
}

var termKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyTab:    KeyTab,
	tcell.KeyCtrlC:  KeyEscape,
}

// termKey maps a terminal key to a KeyEvent. Terminals report presses only.
func termKey(ev *tcell.EventKey) (KeyEvent, bool) {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	if code, ok := termKeys[ev.Key()]; ok {
		return KeyEvent{Code: code, Press: true}, true
	}
	return KeyEvent{}, false
}

// fitCells returns the pixel size a w x h image is scaled to so that it fits
// cols x rows half-block cells with its aspect ratio kept.
func fitCells(w, h, cols, rows int) (ow, oh int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	ow, oh = cols, h*cols/w
	if oh > rows*2 {
		oh = rows * 2
		ow = w * oh / h
	}
	return max(ow, 1), max(oh, 1)
}

var errEmptyTerminal = errors.New("terminal too small")

// drawHalfBlocks scales img to the screen and draws it with the upper
// half-block rune: foreground is the top pixel, background the bottom one.
func drawHalfBlocks(s tcell.Screen, img image.Image) error {
	cols, rows := s.Size()
	b := img.Bounds()
	ow, oh := fitCells(b.Dx(), b.Dy(), cols, rows)
	if ow == 0 {
		return errEmptyTerminal
	}
	scaled := resize.Resize(uint(ow), uint(oh), img, resize.NearestNeighbor)
	sb := scaled.Bounds()

	s.Clear()
	for cy := 0; cy*2 < oh; cy++ {
		for cx := 0; cx < ow; cx++ {
			top := termColor(scaled, sb.Min.X+cx, sb.Min.Y+cy*2)
			bot := tcell.ColorBlack
			if cy*2+1 < oh {
				bot = termColor(scaled, sb.Min.X+cx, sb.Min.Y+cy*2+1)
			}
			st := tcell.StyleDefault.Foreground(top).Background(bot)
			s.SetContent(cx, cy, '▀', nil, st)
		}
	}
	s.Show()
	return nil
}

func termColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
