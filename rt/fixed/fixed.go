package fixed

import (
	"math"
	"strconv"
)

// Scalar is a signed Q17.15 fixed-point number.
type Scalar int32

// FracBits is the number of fractional bits in a Scalar.
const FracBits = 15

const fracMask Scalar = 1<<FracBits - 1

const (
	Zero     Scalar = 0
	One      Scalar = 1 << FracBits
	MinusOne Scalar = -One
	Half     Scalar = One >> 1
	Two      Scalar = One + One

	Max Scalar = math.MaxInt32
	Min Scalar = math.MinInt32

	// Epsilon is the smallest positive step.
	Epsilon Scalar = 1
)

// Rounded Q17.15 constants.
const (
	Pi        Scalar = 102944 // 3.14159265
	TwoPi     Scalar = 205887 // 6.28318531
	HalfPi    Scalar = 51472  // 1.57079633
	OneOverPi Scalar = 10430  // 0.31830989
	E         Scalar = 89073  // 2.71828183
)

const halfTurnDeg Scalar = 180 << FracBits

// SqrtUndefined is returned by Sqrt for negative input.
const SqrtUndefined Scalar = -1

func saturate(v int64) Scalar {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Scalar(v)
}

// FromInt converts an integer to Scalar, saturating out-of-range values.
func FromInt(i int) Scalar { return saturate(int64(i) << FracBits) }

// FromFloat converts a float to the nearest Scalar. Meant for scene setup and
// tools; the render path never touches floats.
func FromFloat(f float64) Scalar {
	if f >= 0 {
		f += 0.5 / float64(One)
	} else {
		f -= 0.5 / float64(One)
	}
	f *= float64(One)
	if f >= float64(Max) {
		return Max
	}
	if f <= float64(Min) {
		return Min
	}
	return Scalar(int64(f))
}

// ToInt returns the integer part, rounding toward negative infinity.
func (a Scalar) ToInt() int { return int(a >> FracBits) }

// Float64 returns a as a float64.
func (a Scalar) Float64() float64 { return float64(a) / float64(One) }

func (a Scalar) String() string { return strconv.FormatFloat(a.Float64(), 'f', 4, 64) }

func Add(a, b Scalar) Scalar { return saturate(int64(a) + int64(b)) }
func Sub(a, b Scalar) Scalar { return saturate(int64(a) - int64(b)) }

// Mul multiplies in 64 bits and shifts back. The shift truncates toward
// negative infinity; there is no rounding correction.
func Mul(a, b Scalar) Scalar { return saturate((int64(a) * int64(b)) >> FracBits) }

// Div returns a/b, or Max when b is zero.
func Div(a, b Scalar) Scalar {
	if b == 0 {
		return Max
	}
	return saturate((int64(a) << FracBits) / int64(b))
}

// Sqrt uses Newton's method. Values in (0, 1) are inverted first so the
// iteration starts from a well-conditioned guess, and inverted back at the end.
func Sqrt(a Scalar) Scalar {
	if a < 0 {
		return SqrtUndefined
	}
	if a == 0 || a == One {
		return a
	}

	invert := false
	if a < One && a > 6 {
		invert = true
		a = Div(One, a)
	}

	iter := FracBits
	if a > One {
		iter = 0
		for s := a; s > 0; s >>= 2 {
			iter++
		}
	}

	l := (a >> 1) + 1
	for i := 0; i < iter; i++ {
		l = Scalar((int64(l) + int64(Div(a, l))) >> 1)
	}
	if invert {
		return Div(One, l)
	}
	return l
}

func Minimum(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

func Maximum(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

func Clamp(a, lo, hi Scalar) Scalar {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

func Abs(a Scalar) Scalar {
	if a < 0 {
		return saturate(-int64(a))
	}
	return a
}

// Sign returns One, MinusOne or Zero.
func Sign(a Scalar) Scalar {
	switch {
	case a > 0:
		return One
	case a < 0:
		return MinusOne
	}
	return Zero
}

// Floor clears the fractional bits. The arithmetic shift makes it a true
// floor for negative values (Floor(-0.5) == -1).
func Floor(a Scalar) Scalar { return (a >> FracBits) << FracBits }

func Fract(a Scalar) Scalar { return a & fracMask }

func Lerp(start, end, t Scalar) Scalar { return Add(start, Mul(Sub(end, start), t)) }

// Mix is the GLSL-style blend x*(1-a) + y*a.
func Mix(x, y, a Scalar) Scalar { return Add(Mul(x, Sub(One, a)), Mul(y, a)) }

func DegToRad(deg Scalar) Scalar { return Div(Mul(deg, Pi), halfTurnDeg) }
func RadToDeg(rad Scalar) Scalar { return Div(Mul(rad, halfTurnDeg), Pi) }
