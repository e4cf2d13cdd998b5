package fixed

// Mat4 is a row-major 4x4 matrix. Multiplying a column vector takes the dot
// product of each row with it.
type Mat4 struct {
	R1, R2, R3, R4 Vec4
}

func Identity() Mat4 {
	return Mat4{
		R1: Vec4{One, 0, 0, 0},
		R2: Vec4{0, One, 0, 0},
		R3: Vec4{0, 0, One, 0},
		R4: Vec4{0, 0, 0, One},
	}
}

// Translate returns a matrix that moves points by d. The offset lives in the
// fourth column, so M*(p, 1) == (p+d, 1).
func Translate(d Vec3) Mat4 {
	return Mat4{
		R1: Vec4{One, 0, 0, d.X},
		R2: Vec4{0, One, 0, d.Y},
		R3: Vec4{0, 0, One, d.Z},
		R4: Vec4{0, 0, 0, One},
	}
}

// RotateY rotates about the Y axis by rad.
func RotateY(rad Scalar) Mat4 {
	c := Cos(rad)
	s := Sin(rad)
	return Mat4{
		R1: Vec4{c, 0, s, 0},
		R2: Vec4{0, One, 0, 0},
		R3: Vec4{-s, 0, c, 0},
		R4: Vec4{0, 0, 0, One},
	}
}

func (m Mat4) col(i int) Vec4 {
	switch i {
	case 0:
		return Vec4{m.R1.X, m.R2.X, m.R3.X, m.R4.X}
	case 1:
		return Vec4{m.R1.Y, m.R2.Y, m.R3.Y, m.R4.Y}
	case 2:
		return Vec4{m.R1.Z, m.R2.Z, m.R3.Z, m.R4.Z}
	default:
		return Vec4{m.R1.W, m.R2.W, m.R3.W, m.R4.W}
	}
}

// Mul returns m*b.
func (m Mat4) Mul(b Mat4) Mat4 {
	c0, c1, c2, c3 := b.col(0), b.col(1), b.col(2), b.col(3)
	row := func(r Vec4) Vec4 {
		return Vec4{r.Dot(c0), r.Dot(c1), r.Dot(c2), r.Dot(c3)}
	}
	return Mat4{R1: row(m.R1), R2: row(m.R2), R3: row(m.R3), R4: row(m.R4)}
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{m.R1.Dot(v), m.R2.Dot(v), m.R3.Dot(v), m.R4.Dot(v)}
}

// TransformPoint applies m to p with w = 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 { return m.MulVec4(p.Vec4(One)).XYZ() }
