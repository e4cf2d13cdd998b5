package geom

import "fxray/rt/fixed"

// slabSpan runs the slab method and returns the entry and exit distances plus
// the axis (0..2) that produced the entry.
func slabSpan(r Ray, s Slab) (tmin, tmax fixed.Scalar, axis int) {
	o := [3]fixed.Scalar{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]fixed.Scalar{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]fixed.Scalar{s.Min.X, s.Min.Y, s.Min.Z}
	hi := [3]fixed.Scalar{s.Max.X, s.Max.Y, s.Max.Z}

	tmin, tmax = fixed.Min, fixed.Max
	for i := 0; i < 3; i++ {
		// A zero component divides to Max; the span then saturates to
		// (-inf, +inf) when the origin is between the planes and misses otherwise.
		inv := fixed.Div(fixed.One, d[i])
		t1 := fixed.Mul(fixed.Sub(lo[i], o[i]), inv)
		t2 := fixed.Mul(fixed.Sub(hi[i], o[i]), inv)
		near, far := fixed.Minimum(t1, t2), fixed.Maximum(t1, t2)
		if near > tmin {
			tmin, axis = near, i
		}
		tmax = fixed.Minimum(tmax, far)
	}
	return tmin, tmax, axis
}

func slabHit(r Ray, s Slab, tmin fixed.Scalar, n fixed.Vec3) Hit {
	return Hit{
		Point:    r.At(tmin),
		Normal:   n,
		Dist:     tmin,
		OK:       true,
		Material: s.Material,
	}
}

// IntersectSlab tests r against s. The hit carries the slab's stored normal.
// Dist is the entry distance and is negative when the origin lies inside.
func IntersectSlab(r Ray, s Slab) Hit {
	tmin, tmax, _ := slabSpan(r, s)
	if tmax < 0 || tmin > tmax {
		return NoHit()
	}
	return slabHit(r, s, tmin, s.Normal)
}

// IntersectSlabFace is IntersectSlab with the normal of the face the ray
// entered through instead of the stored one.
func IntersectSlabFace(r Ray, s Slab) Hit {
	tmin, tmax, axis := slabSpan(r, s)
	if tmax < 0 || tmin > tmax {
		return NoHit()
	}
	return slabHit(r, s, tmin, entryNormal(r.Dir, axis))
}

func entryNormal(d fixed.Vec3, axis int) fixed.Vec3 {
	comp := [3]fixed.Scalar{d.X, d.Y, d.Z}[axis]
	sign := fixed.MinusOne
	if comp < 0 {
		sign = fixed.One
	}
	var n fixed.Vec3
	switch axis {
	case 0:
		n.X = sign
	case 1:
		n.Y = sign
	default:
		n.Z = sign
	}
	return n
}

// Transform moves both corners by m. Only translations keep a slab axis
// aligned; the stored normal is left as is.
func (s Slab) Transform(m fixed.Mat4) Slab {
	s.Min = m.TransformPoint(s.Min)
	s.Max = m.TransformPoint(s.Max)
	return s
}
