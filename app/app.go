// Package app is the interactive front end of the renderer: it traces the
// selected scene into the HAL framebuffer, presents it and reacts to keys.
package app

import (
	"context"
	"errors"
	"fmt"

	"fxray/hal"
	"fxray/internal/buildinfo"
	"fxray/rt/fixed"
	"fxray/rt/frame"
	"fxray/rt/overlay"
	"fxray/rt/scenes"
	"fxray/rt/trace"
)

// ErrQuit is returned by the step function once the user asked to leave.
var ErrQuit = errors.New("app: quit")

type Config struct {
	Scene   string
	Workers int
	Options trace.Options

	// Overlay draws a status bar over each finished frame.
	Overlay bool

	// Band is the number of rows pushed per partial present when the
	// framebuffer implements hal.RowPresenter and rendering is serial.
	// Zero disables partial presents.
	Band int
}

func DefaultConfig() Config {
	return Config{
		Scene:   "cornell",
		Workers: 1,
		Options: trace.DefaultOptions(),
		Overlay: true,
		Band:    16,
	}
}

const (
	fovStep = 5
	fovMin  = 20
	fovMax  = 150
)

type app struct {
	h     hal.HAL
	cfg   Config
	names []string
	idx   int

	dirty  bool
	booted bool
}

// New initializes the app with the default config and returns its step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the step function for cfg. Each call drains pending
// key events and re-renders when something changed. Configuration errors
// are returned by every step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := newApp(h, cfg)
	if err != nil {
		logLine(h, err.Error())
		return func() error { return err }
	}
	return a.step
}

// Run starts the app and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}
	for {
		if err := step(); err != nil {
			if !errors.Is(err, ErrQuit) {
				logLine(h, err.Error())
			}
			select {}
		}
		if ticks == nil {
			select {}
		}
		<-ticks
	}
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logLine(h, buildinfo.Line())
	a := &app{h: h, cfg: cfg, names: scenes.Names(), dirty: true}
	a.idx = -1
	for i, n := range a.names {
		if n == cfg.Scene {
			a.idx = i
		}
	}
	if a.idx < 0 {
		return nil, fmt.Errorf("app: unknown scene %q (have %v)", cfg.Scene, a.names)
	}
	return a, nil
}

func (a *app) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = showPanic(a.h, r)
		}
	}()

	if err := a.drainKeys(); err != nil {
		return err
	}
	if !a.dirty {
		return nil
	}
	a.dirty = false
	return a.render()
}

func (a *app) drainKeys() error {
	in := a.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *app) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyRight:
		a.selectScene(1)
	case hal.KeyLeft:
		a.selectScene(-1)
	case hal.KeyUp:
		a.adjustFOV(-fovStep)
	case hal.KeyDown:
		a.adjustFOV(fovStep)
	case hal.KeyEnter:
		a.dirty = true
	}
	switch ev.Rune {
	case 'q':
		return ErrQuit
	case 'r':
		a.dirty = true
	case 'n':
		a.selectScene(1)
	case 'p':
		a.selectScene(-1)
	case 'o':
		a.cfg.Overlay = !a.cfg.Overlay
		a.dirty = true
	case 'f':
		a.cfg.Options.FaceNormals = !a.cfg.Options.FaceNormals
		a.dirty = true
	}
	return nil
}

func (a *app) selectScene(delta int) {
	n := len(a.names)
	a.idx = ((a.idx+delta)%n + n) % n
	a.dirty = true
}

func (a *app) adjustFOV(deg int) {
	fov := a.cfg.Options.FOVDeg.ToInt() + deg
	fov = min(max(fov, fovMin), fovMax)
	a.cfg.Options.FOVDeg = fixed.FromInt(fov)
	a.dirty = true
}

func (a *app) framebuffer() (hal.Framebuffer, error) {
	d := a.h.Display()
	if d == nil {
		return nil, errors.New("app: no display")
	}
	fb := d.Framebuffer()
	if fb == nil || fb.Buffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}
	return fb, nil
}

func (a *app) render() error {
	fb, err := a.framebuffer()
	if err != nil {
		return err
	}
	w, h := fb.Width(), fb.Height()
	name := a.names[a.idx]
	scene, _ := scenes.ByName(name)

	if !a.booted {
		a.booted = true
		splash(fb, fmt.Sprintf("tracing %s %dx%d", name, w, h))
	}

	tr, err := trace.NewTracer(scene, a.cfg.Options, w, h)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	target := &frame.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: h}
	r := &frame.Renderer{Tracer: tr, Workers: a.cfg.Workers}
	if rp, ok := fb.(hal.RowPresenter); ok && a.cfg.Band > 0 && a.cfg.Workers <= 1 {
		r.RowDone = bandPresenter(rp, a.cfg.Band, h)
	}

	led := a.h.LED()
	if led != nil {
		led.High()
	}
	st, err := r.Render(context.Background(), target)
	if led != nil {
		led.Low()
	}
	if err != nil {
		return fmt.Errorf("app: render %s: %w", name, err)
	}
	logLine(a.h, fmt.Sprintf("render: scene=%s fov=%d %s", name, a.cfg.Options.FOVDeg.ToInt(), st))

	if a.cfg.Overlay {
		overlay.StatusLine(overlay.New(target),
			fmt.Sprintf("%s %dms  </> scene  o overlay  q quit", name, st.Elapsed.Milliseconds()),
			overlay.White, overlay.Black)
	}
	return fb.Present()
}

// bandPresenter returns a row hook that pushes every band rows, plus the
// remainder at the last row. Rows must arrive in order.
func bandPresenter(rp hal.RowPresenter, band, height int) func(y int) {
	start := 0
	return func(y int) {
		if y+1-start < band && y != height-1 {
			return
		}
		_ = rp.PresentRows(start, y+1)
		start = y + 1
	}
}

func splash(fb hal.Framebuffer, msg string) {
	t := &frame.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	overlay.Lines(overlay.New(t), []string{"fxray " + buildinfo.Short(), msg}, overlay.Amber, overlay.Black)
	_ = fb.Present()
}

func logLine(h hal.HAL, s string) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
