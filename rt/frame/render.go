// Package frame renders whole frames from a trace.Tracer into a Target.
package frame

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fxray/rt/dither"
	"fxray/rt/trace"
)

// Stats summarizes one rendered frame.
type Stats struct {
	Pixels     int
	Diffuse    int
	Light      int
	Miss       int
	Exhausted  int
	MaxBounces int
	Elapsed    time.Duration
}

func (s *Stats) add(res trace.Result) {
	s.Pixels++
	switch res.State {
	case trace.StateDiffuse:
		s.Diffuse++
	case trace.StateLight:
		s.Light++
	case trace.StateMiss:
		s.Miss++
	case trace.StateExhausted:
		s.Exhausted++
	}
	if res.Bounces > s.MaxBounces {
		s.MaxBounces = res.Bounces
	}
}

func (s *Stats) merge(o Stats) {
	s.Pixels += o.Pixels
	s.Diffuse += o.Diffuse
	s.Light += o.Light
	s.Miss += o.Miss
	s.Exhausted += o.Exhausted
	if o.MaxBounces > s.MaxBounces {
		s.MaxBounces = o.MaxBounces
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d px in %s: diffuse=%d light=%d miss=%d exhausted=%d max_bounces=%d",
		s.Pixels, s.Elapsed.Round(time.Millisecond), s.Diffuse, s.Light, s.Miss, s.Exhausted, s.MaxBounces)
}

// Renderer draws frames. With Workers <= 1 the dither carry runs through the
// whole frame in raster order, wrapping from one row to the next. With more
// workers every scanline starts from a zero carry and rows are spread over at
// most Workers goroutines; the output is then the same for any worker count.
type Renderer struct {
	Tracer  *trace.Tracer
	Workers int

	// RowDone, when set, is called after each finished row. In parallel mode
	// it runs on the worker goroutines and rows finish out of order.
	RowDone func(y int)
}

// Render fills t. The context is only checked between rows.
func (r *Renderer) Render(ctx context.Context, t Target) (Stats, error) {
	if r.Tracer == nil {
		return Stats{}, fmt.Errorf("frame: nil tracer")
	}
	w, h := t.Size()
	cam := r.Tracer.Camera
	if w != cam.Width || h != cam.Height {
		return Stats{}, fmt.Errorf("frame: target %dx%d does not match camera %dx%d", w, h, cam.Width, cam.Height)
	}

	start := time.Now()
	var (
		st  Stats
		err error
	)
	if r.Workers <= 1 {
		st, err = r.serial(ctx, t, w, h)
	} else {
		st, err = r.parallel(ctx, t, w, h)
	}
	st.Elapsed = time.Since(start)
	return st, err
}

func (r *Renderer) serial(ctx context.Context, t Target, w, h int) (Stats, error) {
	var st Stats
	var carry dither.Carry
	for y := 0; y < h; y++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		carry = r.row(t, y, w, carry, &st)
	}
	return st, nil
}

func (r *Renderer) parallel(ctx context.Context, t Target, w, h int) (Stats, error) {
	rows := make([]Stats, h)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for y := 0; y < h; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.row(t, y, w, dither.Carry{}, &rows[y])
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var st Stats
	for i := range rows {
		st.merge(rows[i])
	}
	return st, err
}

func (r *Renderer) row(t Target, y, w int, carry dither.Carry, st *Stats) dither.Carry {
	for x := 0; x < w; x++ {
		p, next, res := r.Tracer.PixelState(x, y, carry)
		t.SetPixel565(x, y, p)
		st.add(res)
		carry = next
	}
	if r.RowDone != nil {
		r.RowDone(y)
	}
	return carry
}
