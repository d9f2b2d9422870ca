package starfall

import (
	"math"
	"math/rand/v2"
)

// Default tuning for a Field. Zero-valued FieldConfig fields fall back to these.
const (
	DefaultMeteorCount = 15
	DefaultExitMargin  = 100.0
	// DefaultSpawnY is the row respawned meteors start on, above the frame.
	DefaultSpawnY = -100.0
)

// DefaultTravelAngle is the fixed diagonal heading shared by every meteor.
const DefaultTravelAngle = math.Pi / 4

// Meteor is a single falling star. Coordinates are in surface pixels.
type Meteor struct {
	X, Y float64
	// Speed is the distance moved along Angle per tick.
	Speed float64
	// Angle is the travel heading in radians. Constant for a run.
	Angle float64
	// Size is the side of the head sprite in pixels.
	Size float64
	// TrailLen is the trail length in pixels, measured back from the head.
	TrailLen float64
	// Rotation is the head sprite rotation in [0, 2π).
	Rotation float64
	// RotationSpeed is added to Rotation every tick, in radians.
	RotationSpeed float64
}

// Tail returns the far end of the meteor's trail.
func (m *Meteor) Tail() (x, y float64) {
	return m.X - m.TrailLen*math.Cos(m.Angle), m.Y - m.TrailLen*math.Sin(m.Angle)
}

// FieldConfig controls how meteors are spawned and move.
type FieldConfig struct {
	// Count is the fixed pool size. Defaults to DefaultMeteorCount.
	Count int
	// Angle is the travel heading for every meteor. Zero means DefaultTravelAngle.
	Angle float64
	// Margin is how far past the right or bottom edge a meteor may travel
	// before it respawns. Defaults to DefaultExitMargin.
	Margin float64
	// SpawnY is the respawn row. Zero means DefaultSpawnY.
	SpawnY float64
	// Speed is the per-tick speed range.
	Speed Range
	// Size is the head sprite size range.
	Size Range
	// TrailLen is the trail length range.
	TrailLen Range
	// RotationSpeed is the per-tick rotation range in radians.
	RotationSpeed Range
	// HeadBlend is the compositing mode for head sprites.
	HeadBlend BlendMode
	// Seed, when non-zero, makes spawning deterministic.
	Seed uint64
}

// DefaultFieldConfig returns the tuning used by the site: fifteen slow, large
// stars with long trails.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:         DefaultMeteorCount,
		Angle:         DefaultTravelAngle,
		Margin:        DefaultExitMargin,
		SpawnY:        DefaultSpawnY,
		Speed:         Range{2, 4},
		Size:          Range{50, 120},
		TrailLen:      Range{150, 350},
		RotationSpeed: Range{0.02, 0.07},
	}
}

// withDefaults fills zero-valued fields from DefaultFieldConfig.
func (c FieldConfig) withDefaults() FieldConfig {
	d := DefaultFieldConfig()
	if c.Count <= 0 {
		c.Count = d.Count
	}
	if c.Angle == 0 {
		c.Angle = d.Angle
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.SpawnY == 0 {
		c.SpawnY = d.SpawnY
	}
	if c.Speed == (Range{}) {
		c.Speed = d.Speed
	}
	if c.Size == (Range{}) {
		c.Size = d.Size
	}
	if c.TrailLen == (Range{}) {
		c.TrailLen = d.TrailLen
	}
	if c.RotationSpeed == (Range{}) {
		c.RotationSpeed = d.RotationSpeed
	}
	return c
}

// Field owns a fixed pool of meteors and the frame they fall through.
// It is not safe for concurrent use; drive it from a single loop.
type Field struct {
	config   FieldConfig
	meteors  []Meteor
	width    float64
	height   float64
	rng      *rand.Rand
	ticks    uint64
	respawns uint64
	render   fieldRenderer

	// scattered is set once the pool has been cold-started over a frame
	// with area.
	scattered bool
}

// NewField creates a Field of cfg.Count meteors scattered over a w×h frame.
// A frame with no area defers the scatter to the first Resize that gives it
// one.
func NewField(cfg FieldConfig, w, h float64) *Field {
	cfg = cfg.withDefaults()
	f := &Field{
		config:  cfg,
		meteors: make([]Meteor, cfg.Count),
		width:   w,
		height:  h,
	}
	if cfg.Seed != 0 {
		f.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	f.scatter()
	return f
}

// scatter cold-starts every meteor over the current frame.
func (f *Field) scatter() {
	for i := range f.meteors {
		f.coldStart(&f.meteors[i])
	}
	f.scattered = f.width > 0 && f.height > 0
}

// Config returns a pointer to the field's config for live tuning. Changes
// apply to meteors as they respawn.
func (f *Field) Config() *FieldConfig {
	return &f.config
}

// Meteors returns the pool. The returned slice MUST NOT be resized.
func (f *Field) Meteors() []Meteor {
	return f.meteors
}

// Len returns the pool size. It never changes after construction.
func (f *Field) Len() int {
	return len(f.meteors)
}

// Bounds returns the current frame size.
func (f *Field) Bounds() (w, h float64) {
	return f.width, f.height
}

// Ticks returns the number of Tick calls since construction.
func (f *Field) Ticks() uint64 {
	return f.ticks
}

// Respawns returns how many times a meteor has left the frame and been
// re-rolled. Cold starts are not counted.
func (f *Field) Respawns() uint64 {
	return f.respawns
}

// Resize changes the frame. Meteors keep their positions; any that now fall
// outside the extended bounds respawn on the next Tick. If the pool was never
// scattered over a frame with area, it is scattered now.
func (f *Field) Resize(w, h float64) {
	f.width = w
	f.height = h
	if !f.scattered && w > 0 && h > 0 {
		f.scatter()
	}
}

// Tick advances every meteor by one frame and respawns those that left the
// frame by more than the exit margin.
func (f *Field) Tick() {
	f.ticks++
	for i := range f.meteors {
		m := &f.meteors[i]
		m.X += m.Speed * math.Cos(m.Angle)
		m.Y += m.Speed * math.Sin(m.Angle)
		m.Rotation = math.Mod(m.Rotation+m.RotationSpeed, 2*math.Pi)

		if f.exited(m) {
			f.respawns++
			f.respawn(m)
		}
	}
}

// exited reports whether m has travelled beyond the right or bottom edge by
// more than the margin.
func (f *Field) exited(m *Meteor) bool {
	return m.Y > f.height+f.config.Margin || m.X > f.width+f.config.Margin
}

// coldStart places m anywhere on screen so the first frame is already populated.
func (f *Field) coldStart(m *Meteor) {
	f.respawn(m)
	m.X = Range{0, f.width}.randomFrom(f.rng)
	m.Y = Range{0, f.height}.randomFrom(f.rng)
}

// respawn re-rolls m above the frame. The x range starts a full frame height
// to the left so a 45° path can still reach the bottom-right corner on tall
// surfaces.
func (f *Field) respawn(m *Meteor) {
	c := &f.config
	m.X = Range{-f.height, f.width}.randomFrom(f.rng)
	m.Y = c.SpawnY
	m.Speed = c.Speed.randomFrom(f.rng)
	m.Size = c.Size.randomFrom(f.rng)
	m.TrailLen = c.TrailLen.randomFrom(f.rng)
	m.Angle = c.Angle
	m.Rotation = Range{0, 2 * math.Pi}.randomFrom(f.rng)
	m.RotationSpeed = c.RotationSpeed.randomFrom(f.rng)
}
