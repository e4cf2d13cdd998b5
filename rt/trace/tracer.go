package trace

import (
	"fmt"

	"fxray/rt/dither"
	"fxray/rt/fixed"
	"fxray/rt/geom"
)

// State is where a traced ray ended up.
type State uint8

const (
	StateDiffuse State = iota
	StateLight
	StateMirror
	StateMiss
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateDiffuse:
		return "diffuse"
	case StateLight:
		return "light"
	case StateMirror:
		return "mirror"
	case StateMiss:
		return "miss"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Result describes how a ray terminated.
type Result struct {
	State   State
	Bounces int          // mirror bounces taken
	Reflect fixed.Scalar // reflectance budget left, before clamping to One
}

type Tracer struct {
	Scene   Scene
	Options Options
	Camera  Camera
}

// NewTracer validates opts and builds a camera for a width x height target.
func NewTracer(scene Scene, opts Options, width, height int) (*Tracer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("trace: invalid target size %dx%d", width, height)
	}
	return &Tracer{
		Scene:   scene,
		Options: opts,
		Camera:  NewCamera(width, height, opts.FOVDeg),
	}, nil
}

func (t *Tracer) Trace(r geom.Ray) fixed.Vec3 {
	c, _ := t.TraceState(r)
	return c
}

// TraceState follows r through at most MaxBounce iterations. Mirrors reflect
// the ray and spend reflectance budget; diffuse surfaces and light proxies end
// the walk. A ray that leaves the scene or runs out of iterations returns the
// background untouched by the budget.
func (t *Tracer) TraceState(r geom.Ray) (fixed.Vec3, Result) {
	opt := &t.Options
	view := t.Scene.View()

	light := fixed.Splat3(fixed.One)
	var albedo fixed.Vec3
	res := Result{State: StateMirror, Reflect: opt.ReflectStart}

walk:
	for i := 0; i < opt.MaxBounce; i++ {
		cat, h, idx := t.Scene.nearest(r, view, opt.FaceNormals)
		switch {
		case cat == CategoryNone:
			res.State = StateMiss
			break walk
		case cat == CategoryLight:
			albedo = h.Color
			light = t.Scene.Lights[idx].Color
			res.State = StateLight
			break walk
		case !h.Smooth:
			albedo = h.Color
			light = light.Mul(t.direct(h, view))
			res.State = StateDiffuse
			break walk
		}

		origin := h.Point
		if cat == CategorySlab {
			origin = origin.Add(h.Normal.Scale(opt.MirrorNudge))
		}
		r = geom.Ray{Origin: origin, Dir: r.Dir.Reflect(h.Normal)}
		res.Reflect = fixed.Maximum(0, fixed.Sub(res.Reflect, opt.ReflectStep))
		res.Bounces++
	}
	if res.State == StateMirror {
		res.State = StateExhausted
	}

	lit := light.Add(fixed.Splat3(opt.Ambient)).Clamp(0, fixed.One)
	switch res.State {
	case StateMiss, StateExhausted:
		return opt.Background.Mul(lit), res
	}
	return albedo.Scale(fixed.Minimum(res.Reflect, fixed.One)).Mul(lit), res
}

// direct sums the light reaching h from every light whose center is not
// hidden behind a sphere. Slabs never cast shadows.
func (t *Tracer) direct(h geom.Hit, view fixed.Mat4) fixed.Vec3 {
	var sum fixed.Vec3
	for i := range t.Scene.Lights {
		l := &t.Scene.Lights[i]
		toLight := view.TransformPoint(l.Sphere.Center).Sub(h.Point)
		dist := toLight.Length()
		dir := toLight.DivScalar(dist)

		if blocker, _ := t.Scene.nearestSphere(geom.Ray{Origin: h.Point, Dir: dir}, view); blocker.OK && blocker.Dist < dist {
			continue
		}

		invSqr := fixed.Div(l.Intensity, fixed.Mul(dist, dist))
		cos := fixed.Maximum(0, dir.Dot(h.Normal))
		atten := fixed.Minimum(fixed.One, fixed.Mul(invSqr, fixed.Mul(fixed.OneOverPi, cos)))
		sum = sum.Add(l.Color.Scale(atten))
	}
	return sum.Clamp(0, fixed.One)
}

// Pixel traces pixel (x, y) and quantizes it with carry.
func (t *Tracer) Pixel(x, y int, carry dither.Carry) (dither.RGB565, dither.Carry) {
	p, c, _ := t.PixelState(x, y, carry)
	return p, c
}

// PixelState is Pixel plus the trace Result.
func (t *Tracer) PixelState(x, y int, carry dither.Carry) (dither.RGB565, dither.Carry, Result) {
	col, res := t.TraceState(t.Camera.Ray(x, y))
	p, c := dither.Quantize(col, carry)
	return p, c, res
}
