package starfall

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// HeroConfig assembles a Hero. Zero values pick the site defaults.
type HeroConfig struct {
	// Field tunes the meteors.
	Field FieldConfig
	// Parallax tunes the layer offset.
	Parallax ParallaxConfig
	// Preloader tunes the loading overlay.
	Preloader PreloaderConfig
	// NoPreloader skips the loading overlay entirely.
	NoPreloader bool
	// Star is the meteor head sprite. Nil uses the procedural glow.
	Star *StarSprite
	// Base and Top are the back and front depth layers. Either may be nil.
	Base, Top *Layer
	// Region is the screen area that tracks the pointer. The zero value
	// tracks the whole surface and follows resizes.
	Region Rect
	// ClearColor fills the surface before each frame.
	ClearColor Color
	// Width and Height are the initial surface size. Layout overrides them
	// on the first frame.
	Width, Height int
}

// Hero is the animated header: a meteor field falling between two parallax
// layers. It implements ebiten.Game; one Hero exists per window.
type Hero struct {
	field     *Field
	parallax  *Parallax
	star      *StarSprite
	base, top *Layer
	preloader *Preloader

	region     Rect
	autoRegion bool
	width      int
	height     int

	// ClearColor fills the surface before each frame.
	ClearColor Color
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string

	pointerInside bool
	updateFunc    func() error

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	fps   fpsOverlay
	debug bool
	stats debugStats
}

// NewHero builds a Hero from cfg.
func NewHero(cfg HeroConfig) *Hero {
	star := cfg.Star
	if star == nil {
		star = NewStarSprite()
	}
	h := &Hero{
		field:         NewField(cfg.Field, float64(cfg.Width), float64(cfg.Height)),
		parallax:      NewParallax(cfg.Parallax),
		star:          star,
		base:          cfg.Base,
		top:           cfg.Top,
		region:        cfg.Region,
		autoRegion:    cfg.Region.Empty(),
		width:         cfg.Width,
		height:        cfg.Height,
		ClearColor:    cfg.ClearColor,
		ScreenshotDir: "screenshots",
	}
	if !cfg.NoPreloader {
		h.preloader = NewPreloader(cfg.Preloader)
	}
	if h.autoRegion {
		h.region = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}
	return h
}

// Field returns the meteor field.
func (h *Hero) Field() *Field { return h.field }

// Parallax returns the layer offset interpolator.
func (h *Hero) Parallax() *Parallax { return h.parallax }

// Star returns the head sprite.
func (h *Hero) Star() *StarSprite { return h.star }

// Preloader returns the loading overlay, or nil when disabled.
func (h *Hero) Preloader() *Preloader { return h.preloader }

// Region returns the pointer-tracking area.
func (h *Hero) Region() Rect { return h.region }

// SetRegion fixes the pointer-tracking area. An empty rect tracks the whole
// surface again.
func (h *Hero) SetRegion(r Rect) {
	h.autoRegion = r.Empty()
	if h.autoRegion {
		r = Rect{Width: float64(h.width), Height: float64(h.height)}
	}
	h.region = r
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (h *Hero) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// SetDebugMode enables per-frame timing output and asset diagnostics on
// stderr.
func (h *Hero) SetDebugMode(enabled bool) {
	h.debug = enabled
	globalDebug = enabled
}

// Update advances one frame: pointer, preloader, meteors, parallax.
func (h *Hero) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()

	if h.preloader != nil {
		if !h.preloader.Hiding() && h.assetSettled() {
			h.preloader.MarkLoaded()
		}
		h.preloader.Update(dt)
	}

	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}
	h.field.Tick()
	h.parallax.Tick()
	if h.debug {
		h.stats.tickTime = time.Since(t0)
	}

	if h.updateFunc != nil {
		return h.updateFunc()
	}
	return nil
}

// assetSettled reports whether the star asset has finished loading either way.
func (h *Hero) assetSettled() bool {
	select {
	case <-h.star.Loaded():
		return true
	default:
		return false
	}
}

// processInput feeds one pointer sample per frame into the parallax target.
// Injected events take priority; real input is ignored while a test runner
// is attached so scripts stay deterministic.
func (h *Hero) processInput() {
	if h.processInjectedInput() {
		return
	}
	if h.testRunner != nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	h.handlePointer(float64(mx), float64(my), ebiten.IsFocused())
}

// handlePointer applies a pointer sample. present is false when the pointer
// has left the window. Moving out of the region is a pointer-leave.
func (h *Hero) handlePointer(x, y float64, present bool) {
	var nx, ny float64
	inside := false
	if present {
		nx, ny, inside = NormalizePointer(x, y, h.region)
	}
	switch {
	case inside:
		h.parallax.SetTarget(nx, ny)
		h.pointerInside = true
	case h.pointerInside:
		h.parallax.ClearTarget()
		h.pointerInside = false
	}
}

// Draw renders the frame: background, base layer, meteors, top layer, then
// overlays.
func (h *Hero) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	screen.Fill(h.ClearColor.toRGBA())
	baseOff, topOff := h.parallax.LayerOffsets()
	h.base.Draw(screen, baseOff)
	h.field.Render(screen, h.star)
	h.top.Draw(screen, topOff)

	if h.preloader != nil {
		h.preloader.Draw(screen)
	}
	if h.ShowFPS {
		h.fps.draw(screen, 1.0/float64(ebiten.TPS()))
	}

	if h.debug {
		h.stats.renderTime = time.Since(t0)
		h.stats.meteors = h.field.Len()
		h.stats.respawns = h.field.Respawns()
		h.stats.offset = h.parallax.Offset()
		h.debugLog(h.stats)
	}

	h.flushScreenshots(screen)
}

// Layout follows the outside size so the meteor frame always matches the
// window.
func (h *Hero) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (h *Hero) resize(w, ht int) {
	h.width, h.height = w, ht
	h.field.Resize(float64(w), float64(ht))
	if h.autoRegion {
		h.region = Rect{Width: float64(w), Height: float64(ht)}
	}
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Debug enables per-frame stats on stderr.
	Debug bool
}

// Run opens a resizable window and drives h until the window closes.
func Run(h *Hero, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	h.ShowFPS = cfg.ShowFPS
	if cfg.Debug {
		h.SetDebugMode(true)
	}
	h.resize(cfg.Width, cfg.Height)
	return ebiten.RunGame(h)
}
