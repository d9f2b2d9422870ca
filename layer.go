package starfall

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is one depth plane of the hero. It is stretched to cover the surface
// plus Overscan on every side, so a parallax shift of up to Overscan pixels
// never exposes an edge.
type Layer struct {
	Image    *ebiten.Image
	Overscan float64
}

// Draw draws the layer onto dst translated by off.
func (l *Layer) Draw(dst *ebiten.Image, off Vec2) {
	if l == nil || l.Image == nil {
		return
	}
	db := dst.Bounds()
	ib := l.Image.Bounds()
	if ib.Dx() == 0 || ib.Dy() == 0 || db.Dx() == 0 || db.Dy() == 0 {
		return
	}
	o := l.Overscan
	var op ebiten.DrawImageOptions
	op.GeoM.Scale((float64(db.Dx())+2*o)/float64(ib.Dx()), (float64(db.Dy())+2*o)/float64(ib.Dy()))
	op.GeoM.Translate(float64(db.Min.X)-o+off.X, float64(db.Min.Y)-o+off.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(l.Image, &op)
}

// RidgeConfig describes a procedural mountain silhouette.
type RidgeConfig struct {
	// Color fills everything below the ridge line.
	Color Color
	// Baseline is the mean ridge height as a fraction of the image height
	// measured from the top.
	Baseline float64
	// Amplitude is the peak deviation from Baseline, as a fraction of height.
	Amplitude float64
	// Octaves is the number of noise octaves. Defaults to 4.
	Octaves int
	// Seed picks the noise gradients.
	Seed uint64
}

// Ridge noise tuning: features across the width of the frame, and the gain
// applied before clamping so the ridge uses most of its band.
const (
	ridgeFeatures = 3.0
	ridgeGain     = 2.5
)

// RidgeProfile returns, per column, the row at which the ridge starts. The
// shape is seeded 1D Perlin noise, clamped so it stays within
// Baseline ± Amplitude.
func RidgeProfile(w, h int, cfg RidgeConfig) []float64 {
	octaves := cfg.Octaves
	if octaves <= 0 {
		octaves = 4
	}
	noise := perlin.NewPerlin(2, 2, int32(octaves), int64(cfg.Seed))

	out := make([]float64, w)
	for x := 0; x < w; x++ {
		t := float64(x) / float64(max(w, 1))
		v := clampUnit(noise.Noise1D(t*ridgeFeatures+0.5) * ridgeGain)
		out[x] = (cfg.Baseline + v*cfg.Amplitude) * float64(h)
	}
	return out
}

// ridgePixels rasterises a ridge silhouette into a w×h straight-alpha image.
func ridgePixels(w, h int, cfg RidgeConfig) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	c := color.NRGBA{
		R: uint8(clamp01(cfg.Color.R) * 255),
		G: uint8(clamp01(cfg.Color.G) * 255),
		B: uint8(clamp01(cfg.Color.B) * 255),
		A: uint8(clamp01(cfg.Color.A) * 255),
	}
	profile := RidgeProfile(w, h, cfg)
	for x := 0; x < w; x++ {
		for y := max(int(math.Ceil(profile[x])), 0); y < h; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// NewRidgeLayer generates a w×h silhouette layer.
func NewRidgeLayer(w, h int, cfg RidgeConfig, overscan float64) *Layer {
	return &Layer{
		Image:    ebiten.NewImageFromImage(ridgePixels(w, h, cfg)),
		Overscan: overscan,
	}
}

// NewImageLayer wraps an existing image as a layer.
func NewImageLayer(img *ebiten.Image, overscan float64) *Layer {
	return &Layer{Image: img, Overscan: overscan}
}
