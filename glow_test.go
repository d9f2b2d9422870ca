package starfall

import (
	"math"
	"testing"
)

func TestSampleGradientStops(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"centre", 0, Color{1, 1, 1, 1}},
		{"before start clamps", -1, Color{1, 1, 1, 1}},
		{"pale yellow", 0.2, Color{1, 241.0 / 255, 168.0 / 255, 1}},
		{"gold", 0.4, Color{1, 215.0 / 255, 0, 0.5}},
		{"rim", 1, Color{0, 0, 0, 0}},
		{"past rim clamps", 2, Color{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampleGradient(glowStops, tt.t)
			if !colorNear(got, tt.want, 1e-9) {
				t.Errorf("sampleGradient(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSampleGradientInterpolates(t *testing.T) {
	// Halfway between gold (a=0.5) and transparent (a=0) at 0.7.
	got := sampleGradient(glowStops, 0.7)
	if math.Abs(got.A-0.25) > 1e-9 {
		t.Errorf("alpha at 0.7 = %v, want 0.25", got.A)
	}
	// The fade to transparent keeps the gold hue.
	if !colorNear(got, Color{1, 215.0 / 255, 0, 0.25}, 1e-9) {
		t.Errorf("sampleGradient(0.7) = %v, want gold at 0.25 alpha", got)
	}
}

func TestGlowFringeStaysGold(t *testing.T) {
	img := glowPixels(DefaultGlowSize)
	// Row through the centre, a few pixels inside the rim.
	for x := 27; x < 31; x++ {
		px := img.NRGBAAt(x, 16)
		if px.A == 0 {
			continue
		}
		if px.R != 255 || px.G < 213 || px.G > 216 || px.B != 0 {
			t.Errorf("fringe pixel at x=%d = %v, want gold", x, px)
		}
	}
}

func TestSampleGradientEmpty(t *testing.T) {
	if got := sampleGradient(nil, 0.5); got != (Color{}) {
		t.Errorf("empty gradient = %v, want zero", got)
	}
}

func TestGlowPixels(t *testing.T) {
	img := glowPixels(DefaultGlowSize)
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}

	centre := img.NRGBAAt(16, 16)
	if centre.A < 240 || centre.R != 255 {
		t.Errorf("centre pixel = %v, want near-opaque white", centre)
	}
	if corner := img.NRGBAAt(0, 0); corner.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", corner)
	}
	// Alpha never increases moving outward along a row.
	prev := uint8(255)
	for x := 16; x < 32; x++ {
		a := img.NRGBAAt(x, 16).A
		if a > prev {
			t.Fatalf("alpha rose from %d to %d at x=%d", prev, a, x)
		}
		prev = a
	}
}

func TestNewGlowImageDefaultSize(t *testing.T) {
	img := NewGlowImage(0)
	if b := img.Bounds(); b.Dx() != DefaultGlowSize || b.Dy() != DefaultGlowSize {
		t.Errorf("bounds = %v, want %dx%d", b, DefaultGlowSize, DefaultGlowSize)
	}
}

func colorNear(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
