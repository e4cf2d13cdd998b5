package frame

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fxray/rt/dither"
	"fxray/rt/scenes"
	"fxray/rt/trace"
)

const testW, testH = 48, 27

func newRenderer(t *testing.T, workers int) *Renderer {
	t.Helper()
	tr, err := trace.NewTracer(scenes.Cornell(), trace.DefaultOptions(), testW, testH)
	if err != nil {
		t.Fatalf("NewTracer: %v", err)
	}
	return &Renderer{Tracer: tr, Workers: workers}
}

func newTarget() *RGB565Target {
	return &RGB565Target{Buf: make([]byte, testW*testH*2), Stride: testW * 2, W: testW, H: testH}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestSerialAndParallelAgree(t *testing.T) {
	serial, par := newTarget(), newTarget()

	st1, err := newRenderer(t, 1).Render(context.Background(), serial)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	st4, err := newRenderer(t, 4).Render(context.Background(), par)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if st1.Pixels != testW*testH || st4.Pixels != st1.Pixels {
		t.Fatalf("pixel counts %d / %d", st1.Pixels, st4.Pixels)
	}
	if st1.Diffuse != st4.Diffuse || st1.Light != st4.Light || st1.Miss != st4.Miss || st1.Exhausted != st4.Exhausted {
		t.Fatalf("stats differ:\n%v\n%v", st1, st4)
	}

	// Only the carry differs between the modes, so no channel moves by more
	// than one level.
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			r1, g1, b1 := serial.Pixel565(x, y).Levels()
			r2, g2, b2 := par.Pixel565(x, y).Levels()
			if absDiff(r1, r2) > 1 || absDiff(g1, g2) > 1 || absDiff(b1, b2) > 1 {
				t.Fatalf("pixel %d,%d: %#04x vs %#04x", x, y, serial.Pixel565(x, y), par.Pixel565(x, y))
			}
		}
	}
}

func TestParallelIsDeterministic(t *testing.T) {
	a, b := newTarget(), newTarget()
	if _, err := newRenderer(t, 2).Render(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if _, err := newRenderer(t, 8).Render(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if string(a.Buf) != string(b.Buf) {
		t.Fatal("per-scanline output depends on worker count")
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := newRenderer(t, workers).Render(ctx, newTarget())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers %d: err = %v, want context.Canceled", workers, err)
		}
	}
}

func TestRenderSizeMismatch(t *testing.T) {
	tgt := &RGB565Target{Buf: make([]byte, 4*4*2), Stride: 8, W: 4, H: 4}
	if _, err := newRenderer(t, 1).Render(context.Background(), tgt); err == nil {
		t.Fatal("expected size mismatch error")
	}
	if _, err := (&Renderer{}).Render(context.Background(), tgt); err == nil {
		t.Fatal("expected nil tracer error")
	}
}

func TestImageTargetMatchesRGB565(t *testing.T) {
	raw := newTarget()
	img := NewImageTarget(testW, testH)
	r := newRenderer(t, 1)
	if _, err := r.Render(context.Background(), raw); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(context.Background(), img); err != nil {
		t.Fatal(err)
	}
	for _, pt := range [][2]int{{0, 0}, {testW / 2, testH / 2}, {testW - 1, testH - 1}} {
		want := raw.Pixel565(pt[0], pt[1])
		c := img.Img.RGBAAt(pt[0], pt[1])
		if got := dither.From888(c.R, c.G, c.B); got != want {
			t.Fatalf("pixel %v: image %#04x, raw %#04x", pt, got, want)
		}
	}
}

func TestRGB565TargetClips(t *testing.T) {
	tgt := &RGB565Target{Buf: make([]byte, 2*2*2), Stride: 4, W: 2, H: 2}
	tgt.SetPixel565(-1, 0, 0xFFFF)
	tgt.SetPixel565(2, 0, 0xFFFF)
	tgt.SetPixel565(0, 2, 0xFFFF)
	for _, b := range tgt.Buf {
		if b != 0 {
			t.Fatalf("out-of-bounds write landed: %v", tgt.Buf)
		}
	}
	tgt.SetPixel565(1, 1, 0xABCD)
	if tgt.Buf[6] != 0xCD || tgt.Buf[7] != 0xAB {
		t.Fatalf("not little-endian: %v", tgt.Buf)
	}
	tgt.Clear(0x1234)
	if tgt.Pixel565(0, 0) != 0x1234 {
		t.Fatalf("Clear: %#04x", tgt.Pixel565(0, 0))
	}
}

func TestRowDoneCoversEveryRow(t *testing.T) {
	for _, workers := range []int{1, 4} {
		r := newRenderer(t, workers)
		var mu sync.Mutex
		seen := make(map[int]int)
		r.RowDone = func(y int) {
			mu.Lock()
			seen[y]++
			mu.Unlock()
		}
		if _, err := r.Render(context.Background(), newTarget()); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(seen) != testH {
			t.Fatalf("workers=%d: %d rows reported, want %d", workers, len(seen), testH)
		}
		for y, n := range seen {
			if n != 1 {
				t.Fatalf("workers=%d: row %d reported %d times", workers, y, n)
			}
		}
	}
}
