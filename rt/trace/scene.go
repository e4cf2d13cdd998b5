package trace

import (
	"fxray/rt/fixed"
	"fxray/rt/geom"
)

// Scene is the immutable set of objects a Tracer reads. Camera is the eye
// position; rays are traced in camera space with the eye at the origin.
type Scene struct {
	Spheres []geom.Sphere
	Slabs   []geom.Slab
	Lights  []geom.Light
	Camera  fixed.Vec3
}

// View moves world points into camera space.
func (s *Scene) View() fixed.Mat4 { return fixed.Translate(s.Camera.Neg()) }

// Category says which object list produced the nearest hit.
type Category uint8

const (
	CategoryNone Category = iota
	CategorySphere
	CategoryLight
	CategorySlab
)

func (c Category) String() string {
	switch c {
	case CategorySphere:
		return "sphere"
	case CategoryLight:
		return "light"
	case CategorySlab:
		return "slab"
	}
	return "none"
}

// NearestSphere returns the closest sphere hit and its index, or a miss and -1.
func (s *Scene) NearestSphere(r geom.Ray) (geom.Hit, int) {
	return s.nearestSphere(r, s.View())
}

// NearestSlab returns the closest slab hit and its index, or a miss and -1.
func (s *Scene) NearestSlab(r geom.Ray) (geom.Hit, int) {
	return s.nearestSlab(r, s.View(), false)
}

// NearestLight returns the closest light proxy hit and its index, or a miss
// and -1.
func (s *Scene) NearestLight(r geom.Ray) (geom.Hit, int) {
	return s.nearestLight(r, s.View())
}

// Nearest picks between the three reductions. Ties go to spheres, then light
// proxies, then slabs.
func (s *Scene) Nearest(r geom.Ray) (Category, geom.Hit, int) {
	return s.nearest(r, s.View(), false)
}

func (s *Scene) nearestSphere(r geom.Ray, view fixed.Mat4) (geom.Hit, int) {
	best, idx := geom.NoHit(), -1
	for i := range s.Spheres {
		if h := geom.IntersectSphere(r, s.Spheres[i], view); h.Closer(best) {
			best, idx = h, i
		}
	}
	return best, idx
}

func (s *Scene) nearestLight(r geom.Ray, view fixed.Mat4) (geom.Hit, int) {
	best, idx := geom.NoHit(), -1
	for i := range s.Lights {
		if h := geom.IntersectSphere(r, s.Lights[i].Sphere, view); h.Closer(best) {
			best, idx = h, i
		}
	}
	return best, idx
}

func (s *Scene) nearestSlab(r geom.Ray, view fixed.Mat4, faces bool) (geom.Hit, int) {
	moved := s.Camera != (fixed.Vec3{})
	best, idx := geom.NoHit(), -1
	for i := range s.Slabs {
		slab := s.Slabs[i]
		if moved {
			slab = slab.Transform(view)
		}
		var h geom.Hit
		if faces {
			h = geom.IntersectSlabFace(r, slab)
		} else {
			h = geom.IntersectSlab(r, slab)
		}
		if h.Closer(best) {
			best, idx = h, i
		}
	}
	return best, idx
}

// nearest picks the closest category. Equal distances resolve sphere, then
// light, then slab.
func (s *Scene) nearest(r geom.Ray, view fixed.Mat4, faces bool) (Category, geom.Hit, int) {
	sh, si := s.nearestSphere(r, view)
	lh, li := s.nearestLight(r, view)
	ph, pi := s.nearestSlab(r, view, faces)

	switch {
	case sh.OK && sh.Dist <= lh.Dist && sh.Dist <= ph.Dist:
		return CategorySphere, sh, si
	case lh.OK && lh.Dist <= ph.Dist:
		return CategoryLight, lh, li
	case ph.OK:
		return CategorySlab, ph, pi
	}
	return CategoryNone, geom.NoHit(), -1
}
