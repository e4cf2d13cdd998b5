package dither

import (
	"math"
	"testing"

	"fxray/rt/fixed"
)

func TestQuantizeExtremes(t *testing.T) {
	tests := []struct {
		name string
		in   fixed.Vec3
		want RGB565
	}{
		{"black", fixed.Vec3{}, 0},
		{"white", fixed.Splat3(fixed.One), 0xFFFF},
		{"over range", fixed.Splat3(fixed.FromInt(7)), 0xFFFF},
		{"negative", fixed.Splat3(fixed.FromInt(-2)), 0},
		{"red", fixed.V3(fixed.One, 0, 0), 0xF800},
		{"green", fixed.V3(0, fixed.One, 0), 0x07E0},
		{"blue", fixed.V3(0, 0, fixed.One), 0x001F},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, carry := Quantize(tt.in, Carry{})
			if got != tt.want {
				t.Fatalf("Quantize = %#04x, want %#04x", got, tt.want)
			}
			if carry != (Carry{}) {
				t.Fatalf("carry = %+v, want zero", carry)
			}
		})
	}
}

func TestCarryBoundedOverScanline(t *testing.T) {
	step := Step()
	for _, grey := range []float64{0.05, 0.1, 0.33, 0.5, 0.77, 0.99} {
		c := fixed.Splat3(fixed.FromFloat(grey))
		var carry Carry
		var sumR, sumG int
		const n = 384
		for x := 0; x < n; x++ {
			var p RGB565
			p, carry = Quantize(c, carry)
			if carry.X < 0 || carry.X > step.X+2 ||
				carry.Y < 0 || carry.Y > step.Y+2 ||
				carry.Z < 0 || carry.Z > step.Z+2 {
				t.Fatalf("grey %.2f pixel %d: carry %+v outside one step %+v", grey, x, carry, step)
			}
			r, g, _ := p.Levels()
			sumR += r
			sumG += g
		}
		if got := float64(sumR) / n / MaxR; math.Abs(got-grey) > 0.01 {
			t.Fatalf("grey %.2f: mean red %.4f drifted", grey, got)
		}
		if got := float64(sumG) / n / MaxG; math.Abs(got-grey) > 0.01 {
			t.Fatalf("grey %.2f: mean green %.4f drifted", grey, got)
		}
	}
}

func TestRGBExpansion(t *testing.T) {
	r, g, b := RGB565(0xFFFF).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white = %d,%d,%d", r, g, b)
	}
	p := From888(200, 100, 50)
	if lr, lg, lb := p.Levels(); lr != 25 || lg != 25 || lb != 6 {
		t.Fatalf("From888 levels = %d,%d,%d", lr, lg, lb)
	}
	if got := Pack565(32, 64, 32); got != 0 {
		t.Fatalf("Pack565 should mask overflowing levels, got %#04x", got)
	}
}
