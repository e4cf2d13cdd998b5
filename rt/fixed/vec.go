package fixed

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y Scalar
}

// Vec3 is a 3D vector. Points, directions and linear RGB colors all use it.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

func V2(x, y Scalar) Vec2       { return Vec2{X: x, Y: y} }
func V3(x, y, z Scalar) Vec3    { return Vec3{X: x, Y: y, Z: z} }
func V4(x, y, z, w Scalar) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Splat3 returns a vector with every component set to s.
func Splat3(s Scalar) Vec3 { return Vec3{s, s, s} }

// V3f builds a Vec3 from float components. Setup-time only.
func V3f(x, y, z float64) Vec3 { return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)} }

func (v Vec2) Neg() Vec2               { return Vec2{-v.X, -v.Y} }
func (v Vec2) Add(o Vec2) Vec2         { return Vec2{Add(v.X, o.X), Add(v.Y, o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2         { return Vec2{Sub(v.X, o.X), Sub(v.Y, o.Y)} }
func (v Vec2) Mul(o Vec2) Vec2         { return Vec2{Mul(v.X, o.X), Mul(v.Y, o.Y)} }
func (v Vec2) Div(o Vec2) Vec2         { return Vec2{Div(v.X, o.X), Div(v.Y, o.Y)} }
func (v Vec2) Scale(s Scalar) Vec2     { return Vec2{Mul(v.X, s), Mul(v.Y, s)} }
func (v Vec2) DivScalar(s Scalar) Vec2 { return Vec2{Div(v.X, s), Div(v.Y, s)} }
func (v Vec2) Dot(o Vec2) Scalar       { return Add(Mul(v.X, o.X), Mul(v.Y, o.Y)) }
func (v Vec2) Length() Scalar          { return Sqrt(v.Dot(v)) }

func (v Vec2) Normalize() Vec2 { return v.DivScalar(v.Length()) }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{Add(v.X, o.X), Add(v.Y, o.Y), Add(v.Z, o.Z)} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{Sub(v.X, o.X), Sub(v.Y, o.Y), Sub(v.Z, o.Z)} }

// Mul is the component-wise product; colors are modulated with it.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{Mul(v.X, o.X), Mul(v.Y, o.Y), Mul(v.Z, o.Z)} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{Div(v.X, o.X), Div(v.Y, o.Y), Div(v.Z, o.Z)} }

func (v Vec3) Scale(s Scalar) Vec3     { return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)} }
func (v Vec3) DivScalar(s Scalar) Vec3 { return Vec3{Div(v.X, s), Div(v.Y, s), Div(v.Z, s)} }

func (v Vec3) Dot(o Vec3) Scalar {
	return Add(Add(Mul(v.X, o.X), Mul(v.Y, o.Y)), Mul(v.Z, o.Z))
}

func (v Vec3) Length() Scalar { return Sqrt(v.Dot(v)) }

// Normalize divides by the length. A zero vector comes back as saturated
// components; callers that can produce one must check for it.
func (v Vec3) Normalize() Vec3 { return v.DivScalar(v.Length()) }

// Reflect mirrors v about the unit normal n: v - 2*dot(n, v)*n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(Mul(Two, n.Dot(v))))
}

func (v Vec3) Lerp(end Vec3, t Scalar) Vec3 {
	return Vec3{Lerp(v.X, end.X, t), Lerp(v.Y, end.Y, t), Lerp(v.Z, end.Z, t)}
}

// Clamp clamps every component to [lo, hi].
func (v Vec3) Clamp(lo, hi Scalar) Vec3 {
	return Vec3{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi)}
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w Scalar) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{Add(v.X, o.X), Add(v.Y, o.Y), Add(v.Z, o.Z), Add(v.W, o.W)}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{Mul(v.X, o.X), Mul(v.Y, o.Y), Mul(v.Z, o.Z), Mul(v.W, o.W)}
}

func (v Vec4) Scale(s Scalar) Vec4 {
	return Vec4{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s), Mul(v.W, s)}
}

func (v Vec4) Dot(o Vec4) Scalar {
	return Add(Add(Mul(v.X, o.X), Mul(v.Y, o.Y)), Add(Mul(v.Z, o.Z), Mul(v.W, o.W)))
}
