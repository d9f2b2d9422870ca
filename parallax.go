package starfall

// ParallaxConfig tunes the pointer-driven layer offset.
type ParallaxConfig struct {
	// Blend is the per-tick smoothing factor in (0, 1]. 1 snaps to the target
	// every tick. Defaults to DefaultParallaxBlend.
	Blend float64
	// BaseScale multiplies the offset for the back layer.
	BaseScale float64
	// TopScale multiplies the offset for the front layer.
	TopScale float64
	// Shift is the layer translation in pixels for a unit offset before
	// scaling. Defaults to DefaultParallaxShift.
	Shift float64
}

// Default parallax tuning. The shift is in fixed pixels per unit offset,
// whatever the surface width.
const (
	DefaultParallaxBlend = 0.08
	DefaultBaseScale     = 0.5
	DefaultTopScale      = 1.5
	DefaultParallaxShift = 10.0
)

// DefaultParallaxConfig returns the smoothed configuration.
func DefaultParallaxConfig() ParallaxConfig {
	return ParallaxConfig{
		Blend:     DefaultParallaxBlend,
		BaseScale: DefaultBaseScale,
		TopScale:  DefaultTopScale,
		Shift:     DefaultParallaxShift,
	}
}

// InstantParallaxConfig returns the configuration that moves layers straight
// to the pointer with no easing.
func InstantParallaxConfig() ParallaxConfig {
	c := DefaultParallaxConfig()
	c.Blend = 1
	return c
}

func (c ParallaxConfig) withDefaults() ParallaxConfig {
	d := DefaultParallaxConfig()
	if c.Blend <= 0 || c.Blend > 1 {
		c.Blend = d.Blend
	}
	if c.BaseScale == 0 {
		c.BaseScale = d.BaseScale
	}
	if c.TopScale == 0 {
		c.TopScale = d.TopScale
	}
	if c.Shift == 0 {
		c.Shift = d.Shift
	}
	return c
}

// Parallax eases a 2D offset toward a pointer-driven target. Target and
// current offset are in normalised units, [-1, 1] per axis.
//
// A single loop owns a Parallax: pointer handlers call SetTarget and
// ClearTarget, the frame loop calls Tick. No locking.
type Parallax struct {
	config  ParallaxConfig
	current Vec2
	target  Vec2
}

// NewParallax creates a Parallax at rest.
func NewParallax(cfg ParallaxConfig) *Parallax {
	return &Parallax{config: cfg.withDefaults()}
}

// Config returns a pointer to the config for live tuning.
func (p *Parallax) Config() *ParallaxConfig {
	return &p.config
}

// SetTarget sets the offset to ease toward. Inputs are clamped to [-1, 1].
func (p *Parallax) SetTarget(x, y float64) {
	p.target = Vec2{clampUnit(x), clampUnit(y)}
}

// ClearTarget eases back to rest.
func (p *Parallax) ClearTarget() {
	p.target = Vec2{}
}

// Target returns the current target.
func (p *Parallax) Target() Vec2 {
	return p.target
}

// Offset returns the current eased offset.
func (p *Parallax) Offset() Vec2 {
	return p.current
}

// Tick moves the current offset toward the target by the blend factor on
// each axis.
func (p *Parallax) Tick() {
	a := p.config.Blend
	p.current.X += (p.target.X - p.current.X) * a
	p.current.Y += (p.target.Y - p.current.Y) * a
}

// LayerOffsets returns the pixel translation for the base and top layers.
// Layers move against the pointer; the top layer moves further to read as
// closer.
func (p *Parallax) LayerOffsets() (base, top Vec2) {
	s := -p.config.Shift
	base = Vec2{p.current.X * s * p.config.BaseScale, p.current.Y * s * p.config.BaseScale}
	top = Vec2{p.current.X * s * p.config.TopScale, p.current.Y * s * p.config.TopScale}
	return base, top
}

// NormalizePointer maps (px, py) inside region to [-1, 1] per axis, with
// (-1, -1) at the top-left and (1, 1) at the bottom-right. inside is false
// when the point is outside region or region has no area.
func NormalizePointer(px, py float64, region Rect) (nx, ny float64, inside bool) {
	if region.Empty() || !region.Contains(px, py) {
		return 0, 0, false
	}
	nx = (px-region.X)/region.Width*2 - 1
	ny = (py-region.Y)/region.Height*2 - 1
	return nx, ny, true
}
