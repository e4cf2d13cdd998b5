package geom

import (
	"math"
	"testing"

	"github.com/fogleman/fauxgl"

	"fxray/rt/fixed"
)

func near(a, b, tol fixed.Scalar) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d <= int64(tol)
}

func ray(ox, oy, oz, dx, dy, dz float64) Ray {
	return Ray{Origin: fixed.V3f(ox, oy, oz), Dir: fixed.V3f(dx, dy, dz).Normalize()}
}

func TestIntersectSphere(t *testing.T) {
	tests := []struct {
		name   string
		r      Ray
		s      Sphere
		view   fixed.Mat4
		ok     bool
		dist   float64
		normal fixed.Vec3
	}{
		{
			name:   "straight ahead",
			r:      ray(0, 0, 0, 0, 0, -1),
			s:      Sphere{Center: fixed.V3f(0, 0, -5), Radius: fixed.One},
			view:   fixed.Identity(),
			ok:     true,
			dist:   4,
			normal: fixed.V3(0, 0, fixed.One),
		},
		{
			name: "off axis",
			r:    ray(0, 0, 0, 0, 0, -1),
			s:    Sphere{Center: fixed.V3f(5, 5, 5), Radius: fixed.One},
			view: fixed.Identity(),
		},
		{
			name: "behind",
			r:    ray(0, 0, 0, 0, 0, -1),
			s:    Sphere{Center: fixed.V3f(0, 0, 5), Radius: fixed.One},
			view: fixed.Identity(),
		},
		{
			name: "inside near clip",
			r:    ray(0, 0, 0, 0, 0, -1),
			s:    Sphere{Center: fixed.V3f(0, 0, -1.5), Radius: fixed.One},
			view: fixed.Identity(),
		},
		{
			name:   "camera offset",
			r:      ray(0, 0, 0, 0, 0, -1),
			s:      Sphere{Center: fixed.V3f(0, 0, -4), Radius: fixed.One},
			view:   fixed.Translate(fixed.V3f(0, 0, -1)),
			ok:     true,
			dist:   4,
			normal: fixed.V3(0, 0, fixed.One),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := IntersectSphere(tt.r, tt.s, tt.view)
			if h.OK != tt.ok {
				t.Fatalf("OK = %v, want %v", h.OK, tt.ok)
			}
			if !tt.ok {
				if h.Dist != FarDist {
					t.Fatalf("miss Dist = %v, want FarDist", h.Dist)
				}
				return
			}
			if !near(h.Dist, fixed.FromFloat(tt.dist), 8) {
				t.Fatalf("Dist = %v, want %v", h.Dist, tt.dist)
			}
			if !near(h.Normal.X, tt.normal.X, 8) || !near(h.Normal.Y, tt.normal.Y, 8) || !near(h.Normal.Z, tt.normal.Z, 8) {
				t.Fatalf("Normal = %v, want %v", h.Normal, tt.normal)
			}
		})
	}
}

func TestIntersectSphereMaterial(t *testing.T) {
	m := Material{Color: fixed.V3f(0.8, 0.4, 0.4), Smooth: true}
	h := IntersectSphere(ray(0, 0, 0, 0, 0, -1), Sphere{Center: fixed.V3f(0, 0, -5), Radius: fixed.One, Material: m}, fixed.Identity())
	if !h.OK || h.Material != m {
		t.Fatalf("hit = %+v, want material %+v", h, m)
	}
	if !near(h.Point.Z, fixed.FromInt(-4), 8) {
		t.Fatalf("Point = %v", h.Point)
	}
}

// floatSphere is the same quadratic in float64.
func floatSphere(o, d, c fauxgl.Vector, r float64) (float64, float64, bool) {
	oc := o.Sub(c)
	a := d.Dot(d)
	b := 2 * oc.Dot(d)
	cc := oc.Dot(oc) - r*r
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, disc, false
	}
	tt := (-b - math.Sqrt(disc)) / (2 * a)
	return tt, disc, tt > 1
}

func TestIntersectSphereMatchesFloat(t *testing.T) {
	s := Sphere{Center: fixed.V3f(0.3, -0.2, -6), Radius: fixed.FromFloat(1.5)}
	c := fauxgl.V(s.Center.X.Float64(), s.Center.Y.Float64(), s.Center.Z.Float64())
	for x := -0.6; x <= 0.6; x += 0.05 {
		for y := -0.6; y <= 0.6; y += 0.05 {
			r := ray(0, 0, 0, x, y, -1)
			d := fauxgl.V(r.Dir.X.Float64(), r.Dir.Y.Float64(), r.Dir.Z.Float64())
			want, disc, ok := floatSphere(fauxgl.V(0, 0, 0), d, c, 1.5)
			if math.Abs(disc) < 0.5 {
				continue
			}
			h := IntersectSphere(r, s, fixed.Identity())
			if h.OK != ok {
				t.Fatalf("dir %v: OK = %v, want %v", d, h.OK, ok)
			}
			if ok && math.Abs(h.Dist.Float64()-want) > 0.02 {
				t.Fatalf("dir %v: Dist = %v, want %.4f", d, h.Dist, want)
			}
		}
	}
}

func TestIntersectSlab(t *testing.T) {
	wall := Slab{
		Min:    fixed.V3f(2, -1, -1),
		Max:    fixed.V3f(3, 1, 1),
		Normal: fixed.V3(fixed.MinusOne, 0, 0),
	}
	tests := []struct {
		name string
		r    Ray
		s    Slab
		ok   bool
		dist float64
	}{
		{"along x", ray(0, 0, 0, 1, 0, 0), wall, true, 2},
		{"swapped corners", ray(0, 0, 0, 1, 0, 0), Slab{Min: wall.Max, Max: wall.Min, Normal: wall.Normal}, true, 2},
		{"behind", ray(0, 0, 0, -1, 0, 0), wall, false, 0},
		{"parallel outside", ray(0, 5, 0, 1, 0, 0), wall, false, 0},
		{"passes beside", ray(0, 0, 0, 1, 1, 0), wall, false, 0},
		{"thin wall", ray(0, 0, 0, 0, 0, -1), Slab{Min: fixed.V3f(-5, -5, -11), Max: fixed.V3f(5, 5, -11), Normal: fixed.V3(0, 0, fixed.One)}, true, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := IntersectSlab(tt.r, tt.s)
			if h.OK != tt.ok {
				t.Fatalf("OK = %v, want %v", h.OK, tt.ok)
			}
			if !tt.ok {
				return
			}
			if !near(h.Dist, fixed.FromFloat(tt.dist), 8) {
				t.Fatalf("Dist = %v, want %v", h.Dist, tt.dist)
			}
			if h.Normal != tt.s.Normal {
				t.Fatalf("Normal = %v, want stored %v", h.Normal, tt.s.Normal)
			}
		})
	}
}

func TestIntersectSlabFace(t *testing.T) {
	box := Slab{
		Min:    fixed.V3f(-1, -1, -6),
		Max:    fixed.V3f(1, 1, -4),
		Normal: fixed.V3(0, fixed.One, 0),
	}
	tests := []struct {
		name string
		r    Ray
		want fixed.Vec3
	}{
		{"front", ray(0, 0, 0, 0, 0, -1), fixed.V3(0, 0, fixed.One)},
		{"left", ray(-5, 0, -5, 1, 0, 0), fixed.V3(fixed.MinusOne, 0, 0)},
		{"top", ray(0, -5, -5, 0, 1, 0), fixed.V3(0, fixed.MinusOne, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := IntersectSlabFace(tt.r, box)
			if !h.OK {
				t.Fatal("expected hit")
			}
			if h.Normal != tt.want {
				t.Fatalf("Normal = %v, want %v", h.Normal, tt.want)
			}
			if !near(h.Dist, fixed.FromInt(4), 8) {
				t.Fatalf("Dist = %v, want 4", h.Dist)
			}
		})
	}
}

func TestCloser(t *testing.T) {
	miss := NoHit()
	if miss.OK || miss.Dist != FarDist || miss.Material != White {
		t.Fatalf("NoHit = %+v", miss)
	}
	h := Hit{OK: true, Dist: fixed.FromInt(3)}
	if !h.Closer(miss) {
		t.Fatal("hit should be closer than a miss")
	}
	if miss.Closer(h) {
		t.Fatal("miss must never be closer")
	}
	if h.Closer(h) {
		t.Fatal("equal distance is not closer")
	}
}
