package starfall

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultGlowSize is the side of the procedural fallback sprite.
const DefaultGlowSize = 32

// GradientStop is a colour at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// glowStops is the yellow star glow: white core fading through pale yellow
// and gold to transparent at the rim.
var glowStops = []GradientStop{
	{0, Color{1, 1, 1, 1}},
	{0.2, Color{1, 241.0 / 255, 168.0 / 255, 1}},
	{0.4, Color{1, 215.0 / 255, 0, 0.5}},
	{1, Color{0, 0, 0, 0}},
}

// sampleGradient returns the colour at t along stops, which must be sorted by
// offset. Values outside the first and last stop clamp. Stops blend in
// premultiplied space, so a fade to transparent keeps the neighbour's hue.
func sampleGradient(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpPremultiplied(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpPremultiplied(a, b Color, k float64) Color {
	alpha := lerp(a.A, b.A, k)
	if alpha <= 0 {
		return Color{}
	}
	return Color{
		R: lerp(a.R*a.A, b.R*b.A, k) / alpha,
		G: lerp(a.G*a.A, b.G*b.A, k) / alpha,
		B: lerp(a.B*a.A, b.B*b.A, k) / alpha,
		A: alpha,
	}
}

// glowPixels rasterises the radial glow into a size×size straight-alpha image.
// Each pixel samples the gradient at its centre's distance from the middle,
// normalised by the radius. Pixels past the radius stay transparent.
func glowPixels(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) + 0.5 - r
			dy := float64(py) + 0.5 - r
			d := math.Hypot(dx, dy) / r
			if d > 1 {
				continue
			}
			c := sampleGradient(glowStops, d)
			img.SetNRGBA(px, py, color.NRGBA{
				R: uint8(clamp01(c.R)*255 + 0.5),
				G: uint8(clamp01(c.G)*255 + 0.5),
				B: uint8(clamp01(c.B)*255 + 0.5),
				A: uint8(clamp01(c.A)*255 + 0.5),
			})
		}
	}
	return img
}

var glowImage *ebiten.Image

// defaultGlow returns a shared DefaultGlowSize glow, built on first use from
// the render loop.
func defaultGlow() *ebiten.Image {
	if glowImage == nil {
		glowImage = NewGlowImage(DefaultGlowSize)
	}
	return glowImage
}

// NewGlowImage builds the procedural star sprite used until a star image
// loads. A non-positive size uses DefaultGlowSize.
func NewGlowImage(size int) *ebiten.Image {
	if size <= 0 {
		size = DefaultGlowSize
	}
	return ebiten.NewImageFromImage(glowPixels(size))
}
