package starfall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PreloaderConfig controls the loading overlay.
type PreloaderConfig struct {
	// Color is the overlay fill. Its alpha is multiplied by the fade.
	Color Color
	// SafetyTimeout hides the overlay after this many seconds even if
	// MarkLoaded is never called. Defaults to 2.5.
	SafetyTimeout float32
	// FadeDuration is the fade-out length in seconds. Defaults to 0.6.
	FadeDuration float32
	// Ease shapes the fade. Defaults to ease.OutQuad.
	Ease ease.TweenFunc
}

// Preloader is a full-screen overlay covering the hero until assets load.
// It hides once, either on MarkLoaded or after the safety timeout, and never
// comes back.
type Preloader struct {
	config  PreloaderConfig
	elapsed float32
	alpha   float32
	fade    *gween.Tween
	done    bool
}

// NewPreloader creates a fully opaque overlay.
func NewPreloader(cfg PreloaderConfig) *Preloader {
	if cfg.SafetyTimeout <= 0 {
		cfg.SafetyTimeout = 2.5
	}
	if cfg.FadeDuration <= 0 {
		cfg.FadeDuration = 0.6
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutQuad
	}
	if cfg.Color == (Color{}) {
		cfg.Color = Color{0.02, 0.02, 0.05, 1}
	}
	return &Preloader{config: cfg, alpha: 1}
}

// MarkLoaded starts hiding the overlay. Later calls are no-ops.
func (p *Preloader) MarkLoaded() {
	if p.fade != nil || p.done {
		return
	}
	p.fade = gween.New(p.alpha, 0, p.config.FadeDuration, p.config.Ease)
}

// Hiding reports whether the fade has started.
func (p *Preloader) Hiding() bool {
	return p.fade != nil || p.done
}

// Done reports whether the overlay is fully hidden.
func (p *Preloader) Done() bool {
	return p.done
}

// Alpha returns the current overlay opacity in [0, 1].
func (p *Preloader) Alpha() float32 {
	return p.alpha
}

// Update advances the safety timer and the fade by dt seconds.
func (p *Preloader) Update(dt float32) {
	if p.done {
		return
	}
	p.elapsed += dt
	if p.fade == nil && p.elapsed >= p.config.SafetyTimeout {
		p.MarkLoaded()
		// The timeout frame only starts the fade.
		return
	}
	if p.fade == nil {
		return
	}
	val, finished := p.fade.Update(dt)
	p.alpha = val
	if finished {
		p.alpha = 0
		p.done = true
		p.fade = nil
	}
}

// Draw covers dst with the overlay colour at the current alpha.
func (p *Preloader) Draw(dst *ebiten.Image) {
	if p.done || p.alpha <= 0 {
		return
	}
	c := p.config.Color
	c.A *= float64(p.alpha)
	b := dst.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(ensureWhite(), &op)
}
