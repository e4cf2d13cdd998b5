// Package scenes holds the compiled-in scenes. Every call builds fresh
// slices, so callers may modify what they get back.
//
// World y grows downward: the floor sits at y=+5 and the roof at y=-5.
package scenes

import (
	"sort"

	"fxray/rt/fixed"
	"fxray/rt/geom"
	"fxray/rt/trace"
)

var (
	white  = fixed.Splat3(fixed.One)
	red    = fixed.V3(fixed.One, 0, 0)
	green  = fixed.V3(0, fixed.One, 0)
	grey90 = fixed.Splat3(fixed.FromFloat(0.9))
)

func diffuse(c fixed.Vec3) geom.Material { return geom.Material{Color: c} }
func mirror(c fixed.Vec3) geom.Material  { return geom.Material{Color: c, Smooth: true} }

// Cornell is a five-wall box with a mirror sphere, a matte sphere and one
// light under the roof. Some corners are listed max-first; the slab test
// does not care.
func Cornell() trace.Scene {
	return trace.Scene{
		Spheres: []geom.Sphere{
			{Center: fixed.V3f(-2.5, 3, -7), Radius: fixed.Two, Material: mirror(white)},
			{Center: fixed.V3f(2.5, 3, -8.5), Radius: fixed.Two, Material: diffuse(fixed.V3f(0.8, 0.4, 0.4))},
		},
		Slabs: []geom.Slab{
			// left
			{Max: fixed.V3f(-5, 5, 0), Min: fixed.V3f(-5.1, -5, -11), Normal: fixed.V3(fixed.One, 0, 0), Material: diffuse(red)},
			// floor
			{Max: fixed.V3f(-5, 5, 0), Min: fixed.V3f(5, 5.1, -11), Normal: fixed.V3(0, fixed.MinusOne, 0), Material: diffuse(white)},
			// right
			{Max: fixed.V3f(5, 5, 0), Min: fixed.V3f(5.1, -5, -11), Normal: fixed.V3(fixed.MinusOne, 0, 0), Material: diffuse(green)},
			// roof
			{Max: fixed.V3f(-5, -5, 0), Min: fixed.V3f(5, -5, -11), Normal: fixed.V3(0, fixed.One, 0), Material: diffuse(white)},
			// back
			{Max: fixed.V3f(-5, 5, -11), Min: fixed.V3f(5, -5, -11), Normal: fixed.V3(0, 0, fixed.One), Material: diffuse(grey90)},
		},
		Lights: []geom.Light{{
			Color:     white,
			Intensity: fixed.FromInt(100),
			Sphere: geom.Sphere{
				Center:   fixed.V3f(0, -4.8, -7),
				Radius:   fixed.Half,
				Material: diffuse(white),
			},
		}},
	}
}

// MirrorHall puts the camera between two facing mirrors. Rays that only
// meet mirrors run out of bounces and come back as background.
func MirrorHall() trace.Scene {
	return trace.Scene{
		Spheres: []geom.Sphere{
			{Center: fixed.V3f(-1.5, 3, -6), Radius: fixed.FromFloat(1.5), Material: mirror(fixed.V3f(0.7, 0.8, 1))},
			{Center: fixed.V3f(2.5, 3.5, -8), Radius: fixed.FromFloat(1.5), Material: diffuse(fixed.V3f(1, 0.6, 0.2))},
		},
		Slabs: []geom.Slab{
			// back mirror
			{Min: fixed.V3f(-5, -5, -11.1), Max: fixed.V3f(5, 5, -11), Normal: fixed.V3(0, 0, fixed.One), Material: mirror(grey90)},
			// front mirror, behind the camera
			{Min: fixed.V3f(-5, -5, 3), Max: fixed.V3f(5, 5, 3.1), Normal: fixed.V3(0, 0, fixed.MinusOne), Material: mirror(grey90)},
			// floor
			{Min: fixed.V3f(-5, 5, -11), Max: fixed.V3f(5, 5.1, 3), Normal: fixed.V3(0, fixed.MinusOne, 0), Material: diffuse(white)},
		},
		Lights: []geom.Light{{
			Color:     white,
			Intensity: fixed.FromInt(80),
			Sphere: geom.Sphere{
				Center:   fixed.V3f(0, -4, -5),
				Radius:   fixed.Half,
				Material: diffuse(white),
			},
		}},
	}
}

// Void is an empty scene; every pixel is background.
func Void() trace.Scene { return trace.Scene{} }

var registry = map[string]func() trace.Scene{
	"cornell": Cornell,
	"mirrors": MirrorHall,
	"void":    Void,
}

// ByName returns a fresh copy of the named scene.
func ByName(name string) (trace.Scene, bool) {
	fn, ok := registry[name]
	if !ok {
		return trace.Scene{}, false
	}
	return fn(), true
}

// Names lists the scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
