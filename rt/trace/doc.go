// Package trace walks rays through a Scene.
//
// Each primary ray runs a bounded loop: find the nearest sphere, light proxy
// and slab, then stop on a diffuse surface or a light, or reflect off a
// mirror and go again. Rays that leave the scene or use up MaxBounce
// iterations return Options.Background.
//
// Tracer is read-only once built and may be shared between goroutines.
package trace
