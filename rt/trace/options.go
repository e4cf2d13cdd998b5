package trace

import (
	"fmt"

	"fxray/rt/fixed"
)

// Options tune the integrator and the camera.
type Options struct {
	// MaxBounce caps loop iterations per primary ray.
	MaxBounce int
	// FOVDeg is the vertical field of view in degrees.
	FOVDeg fixed.Scalar
	// Ambient is added to the light term before it is clamped.
	Ambient fixed.Scalar
	// Background is returned for rays that miss or run out of bounces.
	Background fixed.Vec3

	// ReflectStart is the initial reflectance budget; every mirror bounce
	// takes ReflectStep off it.
	ReflectStart fixed.Scalar
	ReflectStep  fixed.Scalar

	// MirrorNudge lifts the origin of a ray bounced off a slab along the
	// slab normal.
	MirrorNudge fixed.Scalar

	// FaceNormals shades slabs with the normal of the struck face instead
	// of the stored one.
	FaceNormals bool
}

func DefaultOptions() Options {
	return Options{
		MaxBounce:    5,
		FOVDeg:       fixed.FromInt(80),
		Ambient:      fixed.FromFloat(0.1),
		Background:   fixed.Splat3(fixed.FromFloat(0.1)),
		ReflectStart: 39322,
		ReflectStep:  6554,
		MirrorNudge:  fixed.FromFloat(0.1),
	}
}

func (o Options) Validate() error {
	if o.MaxBounce <= 0 {
		return fmt.Errorf("trace: max bounce must be positive, got %d", o.MaxBounce)
	}
	if o.FOVDeg <= 0 || o.FOVDeg >= fixed.FromInt(180) {
		return fmt.Errorf("trace: fov %v outside (0, 180) degrees", o.FOVDeg)
	}
	if o.Ambient < 0 || o.ReflectStart < 0 || o.ReflectStep < 0 {
		return fmt.Errorf("trace: ambient and reflectance terms must not be negative")
	}
	return nil
}
