package geom

import "fxray/rt/fixed"

const four = 4 * fixed.One

// IntersectSphere tests r against s after moving the center by view. Only the
// nearer root is considered, so a ray starting inside the sphere misses it.
func IntersectSphere(r Ray, s Sphere, view fixed.Mat4) Hit {
	center := view.TransformPoint(s.Center)
	oc := r.Origin.Sub(center)

	a := r.Dir.Dot(r.Dir)
	b := fixed.Mul(fixed.Two, oc.Dot(r.Dir))
	c := fixed.Sub(oc.Dot(oc), fixed.Mul(s.Radius, s.Radius))

	disc := fixed.Sub(fixed.Mul(b, b), fixed.Mul(fixed.Mul(four, a), c))
	if disc < 0 {
		return NoHit()
	}

	t := fixed.Div(fixed.Sub(fixed.Sub(0, b), fixed.Sqrt(disc)), fixed.Mul(fixed.Two, a))
	if t <= NearClip {
		return NoHit()
	}

	p := r.At(t)
	return Hit{
		Point:    p,
		Normal:   p.Sub(center).DivScalar(s.Radius).Normalize(),
		Dist:     t,
		OK:       true,
		Material: s.Material,
	}
}
