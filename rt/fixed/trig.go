package fixed

// Polynomial coefficients for sin(x) ~ x*(1 - x^2*(sinK1 - sinK0*x^2)) on [0, pi/2].
const (
	sinK0 Scalar = 249  // 0.00761
	sinK1 Scalar = 5441 // 0.16605
)

// Sin reduces a into [0, 2pi), folds it into the first quadrant and evaluates
// a two-term odd polynomial.
func Sin(a Scalar) Scalar {
	neg := false

	a %= TwoPi
	if a < 0 {
		a += TwoPi
	}
	switch {
	case a > HalfPi && a <= Pi:
		a = Pi - a
	case a > Pi && a <= Pi+HalfPi:
		a -= Pi
		neg = true
	case a > Pi+HalfPi:
		a = TwoPi - a
		neg = true
	}

	sqr := Mul(a, a)
	r := Mul(sinK0, sqr)
	r -= sinK1
	r = Mul(r, sqr)
	r += One
	r = Mul(r, a)
	if neg {
		return -r
	}
	return r
}

func Cos(a Scalar) Scalar { return Sin(Sub(HalfPi, a)) }

// Tan saturates to Max where Cos is exactly zero.
func Tan(a Scalar) Scalar { return Div(Sin(a), Cos(a)) }
