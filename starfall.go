package starfall

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is a straight-alpha colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// toRGBA premultiplies c for ebiten colour scales and fills.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

// Vec2 is a pair of pixel or normalised coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is a screen-space area, Y down. Pointer tracking treats its edges as
// part of the area.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is on or inside r.
func (r Rect) Contains(x, y float64) bool {
	if x < r.X || y < r.Y {
		return false
	}
	return x <= r.X+r.Width && y <= r.Y+r.Height
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range bounds a per-meteor attribute. Values are drawn uniformly from
// [Min, Max); Min == Max pins the attribute.
type Range struct {
	Min, Max float64
}

// Random draws from r with the process-wide source.
func (r Range) Random() float64 {
	return r.randomFrom(nil)
}

func (r Range) randomFrom(rng *rand.Rand) float64 {
	if r.Max == r.Min {
		return r.Min
	}
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}
	return r.Min + u*(r.Max-r.Min)
}

// BlendMode picks how meteor heads composite over the trail and sky.
type BlendMode uint8

const (
	// BlendNormal is source-over.
	BlendNormal BlendMode = iota
	// BlendAdd sums colours, so overlapping heads glow brighter.
	BlendAdd
	// BlendScreen lightens without ever reaching past white.
	BlendScreen
)

// EbitenBlend maps b onto an ebiten.Blend.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	return ebiten.BlendSourceOver
}

func clamp01(v float64) float64 { return math.Min(math.Max(v, 0), 1) }

// clampUnit limits v to the normalised pointer range [-1, 1].
func clampUnit(v float64) float64 { return math.Min(math.Max(v, -1), 1) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
