package fixed

import (
	"math"
	"testing"
)

var samples = []Scalar{
	0, 1, -1, 6, 7, Half, One, MinusOne, Two, Pi, -Pi,
	FromFloat(0.001), FromFloat(-0.37), FromFloat(123.456), FromFloat(-4096.5),
	FromInt(30000), FromInt(-30000), Max, Min,
}

func near(a, b, tol Scalar) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d <= int64(tol)
}

func TestMulDivUnitIdentity(t *testing.T) {
	for _, a := range samples {
		if got := Mul(a, One); got != a {
			t.Errorf("Mul(%d, One) = %d", a, got)
		}
		if got := Div(a, One); got != a {
			t.Errorf("Div(%d, One) = %d", a, got)
		}
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	for _, a := range samples {
		if a == 0 {
			continue
		}
		if got := Div(a, 0); got != Max {
			t.Errorf("Div(%d, 0) = %d, want Max", a, got)
		}
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		got  Scalar
		want Scalar
	}{
		{"add overflow", Add(Max, One), Max},
		{"add underflow", Add(Min, MinusOne), Min},
		{"sub overflow", Sub(Max, MinusOne), Max},
		{"sub underflow", Sub(Min, One), Min},
		{"mul overflow", Mul(Max, Two), Max},
		{"mul underflow", Mul(Min, Two), Min},
		{"mul sign overflow", Mul(FromInt(-300), FromInt(300)), Min},
		{"div overflow", Div(FromInt(30000), Half/1000), Max},
		{"abs min", Abs(Min), Max},
		{"from int", FromInt(1 << 20), Max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %d want %d", tt.got, tt.want)
			}
		})
	}
}

func TestMulTruncatesTowardNegativeInfinity(t *testing.T) {
	// -1 raw * 0.5 = -0.5 raw, floored to -1 raw.
	if got := Mul(-1, Half); got != -1 {
		t.Fatalf("Mul(-1, Half) = %d, want -1", got)
	}
	if got := Mul(1, Half); got != 0 {
		t.Fatalf("Mul(1, Half) = %d, want 0", got)
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	for f := 0.05; f < 180; f *= 1.07 {
		a := FromFloat(f)
		got := Sqrt(Mul(a, a))
		tol := a/64 + 4
		if !near(got, a, tol) {
			t.Errorf("Sqrt(%v^2) = %v (raw %d vs %d)", a, got, got, a)
		}
	}
}

func TestSqrtSpecialValues(t *testing.T) {
	if got := Sqrt(MinusOne); got != SqrtUndefined {
		t.Fatalf("Sqrt(-1) = %d, want %d", got, SqrtUndefined)
	}
	if got := Sqrt(-1); got != SqrtUndefined {
		t.Fatalf("Sqrt(-1 raw) = %d", got)
	}
	if got := Sqrt(0); got != 0 {
		t.Fatalf("Sqrt(0) = %d", got)
	}
	if got := Sqrt(One); got != One {
		t.Fatalf("Sqrt(One) = %d", got)
	}
	if got := Sqrt(FromInt(4)); !near(got, Two, 2) {
		t.Fatalf("Sqrt(4) = %v", got)
	}
	if got := Sqrt(Max); !near(got, FromFloat(math.Sqrt(Max.Float64())), 8) {
		t.Fatalf("Sqrt(Max) = %v", got)
	}
	if got := Sqrt(FromFloat(0.25)); !near(got, Half, 4) {
		t.Fatalf("Sqrt(0.25) = %v", got)
	}
}

func TestFloorFract(t *testing.T) {
	tests := []struct {
		in, floor, fract float64
	}{
		{1.75, 1, 0.75},
		{-0.5, -1, 0.5},
		{-0.25, -1, 0.75},
		{-2, -2, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		a := FromFloat(tt.in)
		if got := Floor(a); got != FromFloat(tt.floor) {
			t.Errorf("Floor(%v) = %v, want %v", tt.in, got, tt.floor)
		}
		if got := Fract(a); got != FromFloat(tt.fract) {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.fract)
		}
	}
}

func TestSinCosSweep(t *testing.T) {
	tol := FromFloat(0.01)
	for deg := -720; deg <= 720; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		a := FromFloat(rad)
		if got, want := Sin(a), FromFloat(math.Sin(rad)); !near(got, want, tol) {
			t.Errorf("Sin(%d deg) = %v, want %v", deg, got, want)
		}
		if got, want := Cos(a), FromFloat(math.Cos(rad)); !near(got, want, tol) {
			t.Errorf("Cos(%d deg) = %v, want %v", deg, got, want)
		}
	}
}

func TestTan(t *testing.T) {
	if got := Tan(FromFloat(math.Pi / 4)); !near(got, One, FromFloat(0.01)) {
		t.Fatalf("Tan(pi/4) = %v", got)
	}
	if got := Tan(HalfPi); got != Max {
		t.Fatalf("Tan(pi/2) = %v, want saturation", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if Sign(FromFloat(-3.2)) != MinusOne || Sign(0) != 0 || Sign(7) != One {
		t.Fatal("Sign mismatch")
	}
	if got := Lerp(0, FromInt(10), Half); got != FromInt(5) {
		t.Fatalf("Lerp = %v", got)
	}
	if got := Mix(FromInt(2), FromInt(4), Half); got != FromInt(3) {
		t.Fatalf("Mix = %v", got)
	}
	if Minimum(One, Two) != One || Maximum(One, Two) != Two {
		t.Fatal("Minimum/Maximum mismatch")
	}
	if got := Clamp(FromInt(3), 0, One); got != One {
		t.Fatalf("Clamp = %v", got)
	}
	if got := DegToRad(FromInt(180)); got != Pi {
		t.Fatalf("DegToRad(180) = %d, want %d", got, Pi)
	}
	if got := RadToDeg(Pi); got != FromInt(180) {
		t.Fatalf("RadToDeg(pi) = %v", got)
	}
	if got := FromFloat(-1.5).ToInt(); got != -2 {
		t.Fatalf("ToInt(-1.5) = %d", got)
	}
	if got := FromFloat(2.5).String(); got != "2.5000" {
		t.Fatalf("String = %q", got)
	}
}
