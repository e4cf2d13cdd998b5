package trace

import (
	"fxray/rt/fixed"
	"fxray/rt/geom"
)

// Camera turns pixel coordinates into primary rays from the origin looking
// down -Z. Screen y grows downward.
type Camera struct {
	Width, Height int
	FOVDeg        fixed.Scalar

	scale  fixed.Scalar // tan(fov/2)
	aspect fixed.Scalar
	fw, fh fixed.Scalar
}

func NewCamera(width, height int, fovDeg fixed.Scalar) Camera {
	c := Camera{Width: width, Height: height, FOVDeg: fovDeg}
	c.scale = fixed.Tan(fixed.DegToRad(fovDeg / 2))
	c.aspect = fixed.Div(fixed.FromInt(width), fixed.FromInt(height))
	c.fw = fixed.FromInt(width)
	c.fh = fixed.FromInt(height)
	return c
}

// Ray returns the normalized view ray through the center of pixel (x, y).
func (c Camera) Ray(x, y int) geom.Ray {
	px := fixed.Sub(fixed.Div(fixed.FromInt(2*x+1), c.fw), fixed.One)
	py := fixed.Sub(fixed.One, fixed.Div(fixed.FromInt(2*y+1), c.fh))

	px = fixed.Mul(fixed.Mul(px, c.scale), c.aspect)
	py = fixed.Mul(py, c.scale)

	return geom.Ray{Dir: fixed.V3(px, -py, fixed.MinusOne).Normalize()}
}
