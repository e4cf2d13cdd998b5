// Package geom holds the scene primitives and the two ray intersection tests.
//
// A Hit is only meaningful when OK is set; every other field of a miss is
// unspecified apart from Dist, which is FarDist so that nearest-hit
// reductions can compare distances without checking OK first.
package geom

import "fxray/rt/fixed"

// FarDist is the distance of a miss (about 9999 world units).
const FarDist fixed.Scalar = 327647232

// NearClip is the smallest sphere distance accepted as a hit. It keeps a
// bounced ray from striking the surface it just left.
const NearClip = fixed.One

// Material is a base color plus a binary mirror flag.
type Material struct {
	Color  fixed.Vec3
	Smooth bool
}

// White is the material a miss carries.
var White = Material{Color: fixed.Splat3(fixed.One)}

type Sphere struct {
	Center fixed.Vec3
	Radius fixed.Scalar
	Material
}

// Slab is a thin axis-aligned box. Max and Min may be given in any order per
// axis. Normal is stored, not derived from the struck face.
type Slab struct {
	Max, Min fixed.Vec3
	Normal   fixed.Vec3
	Material
}

// Light is a point-like emitter. Sphere is both what the camera sees and the
// target of shadow rays.
type Light struct {
	Color     fixed.Vec3
	Intensity fixed.Scalar
	Sphere    Sphere
}

// Ray direction is expected to be normalized by the caller.
type Ray struct {
	Origin, Dir fixed.Vec3
}

// At returns Origin + Dir*t.
func (r Ray) At(t fixed.Scalar) fixed.Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

type Hit struct {
	Point  fixed.Vec3
	Normal fixed.Vec3
	Dist   fixed.Scalar
	OK     bool
	Material
}

func NoHit() Hit {
	return Hit{Dist: FarDist, Material: White}
}

// Closer reports whether h is a hit nearer than other.
func (h Hit) Closer(other Hit) bool { return h.OK && h.Dist < other.Dist }
