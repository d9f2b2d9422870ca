// Package termview draws a starfall Field and Parallax into a terminal.
//
// The field falls through a virtual pixel frame of CellW×CellH pixels per
// terminal cell, so the same tuning reads about the same in a terminal as in a
// window.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/starfall"
)

// Virtual pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	CellW = 8
	CellH = 16
)

var (
	background = tcell.NewRGBColor(5, 5, 13)
	baseColor  = tcell.NewRGBColor(28, 30, 52)
	topColor   = tcell.NewRGBColor(12, 12, 24)
	headGold   = tcell.NewRGBColor(255, 241, 168)
)

const (
	headRune  = '✦'
	trailRune = '·'
	baseRune  = '▒'
	topRune   = '█'
)

// Config tunes a View.
type Config struct {
	Field    starfall.FieldConfig
	Parallax starfall.ParallaxConfig
	// Base and Top shape the two silhouette rows. Baseline and Amplitude
	// are fractions of the terminal height.
	Base, Top starfall.RidgeConfig
}

// DefaultConfig returns a terminal-friendly tuning: the site's meteors with
// its smoothed parallax over two ridges.
func DefaultConfig() Config {
	return Config{
		Field:    starfall.DefaultFieldConfig(),
		Parallax: starfall.DefaultParallaxConfig(),
		Base:     starfall.RidgeConfig{Baseline: 0.72, Amplitude: 0.08, Seed: 7},
		Top:      starfall.RidgeConfig{Baseline: 0.86, Amplitude: 0.06, Seed: 11},
	}
}

// View owns the terminal rendering of one hero. Drive it from a single loop:
// HandleEvent for input, Tick then Draw once per frame.
type View struct {
	screen   tcell.Screen
	config   Config
	field    *starfall.Field
	parallax *starfall.Parallax
	cols     int
	rows     int
	base     []float64
	top      []float64
	inside   bool
}

// New creates a View sized to screen's current dimensions.
func New(screen tcell.Screen, cfg Config) *View {
	cols, rows := screen.Size()
	v := &View{
		screen:   screen,
		config:   cfg,
		field:    starfall.NewField(cfg.Field, float64(cols*CellW), float64(rows*CellH)),
		parallax: starfall.NewParallax(cfg.Parallax),
	}
	v.resize(cols, rows)
	return v
}

// Field returns the meteor field.
func (v *View) Field() *starfall.Field { return v.field }

// Parallax returns the offset interpolator.
func (v *View) Parallax() *starfall.Parallax { return v.parallax }

// resize regenerates the ridges, wide enough to cover the largest shift.
func (v *View) resize(cols, rows int) {
	v.cols, v.rows = cols, rows
	v.field.Resize(float64(cols*CellW), float64(rows*CellH))
	pad := v.overscan()
	v.base = starfall.RidgeProfile(cols+2*pad, rows, v.config.Base)
	v.top = starfall.RidgeProfile(cols+2*pad, rows, v.config.Top)
}

// overscan is the widest parallax shift in cells on either side.
func (v *View) overscan() int {
	c := v.parallax.Config()
	return int(math.Ceil(c.Shift*math.Max(math.Abs(c.BaseScale), math.Abs(c.TopScale))/CellW)) + 1
}

// HandleEvent applies a tcell event. It reports whether the user asked to quit.
func (v *View) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.pointer(float64(x*CellW+CellW/2), float64(y*CellH+CellH/2), true)
	case *tcell.EventFocus:
		if !ev.Focused {
			v.pointer(0, 0, false)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.resize(cols, rows)
		v.screen.Sync()
	}
	return false
}

// pointer mirrors the window Hero: inside sets the target, leaving clears it.
func (v *View) pointer(px, py float64, present bool) {
	region := starfall.Rect{Width: float64(v.cols * CellW), Height: float64(v.rows * CellH)}
	var nx, ny float64
	inside := false
	if present {
		nx, ny, inside = starfall.NormalizePointer(px, py, region)
	}
	switch {
	case inside:
		v.parallax.SetTarget(nx, ny)
		v.inside = true
	case v.inside:
		v.parallax.ClearTarget()
		v.inside = false
	}
}

// Tick advances the meteors and the parallax by one frame.
func (v *View) Tick() {
	v.field.Tick()
	v.parallax.Tick()
}

// Draw renders the frame into the screen. Callers Show the screen.
func (v *View) Draw() {
	bg := tcell.StyleDefault.Background(background)
	v.screen.Fill(' ', bg)

	baseOff, topOff := v.parallax.LayerOffsets()
	v.drawRidge(v.base, baseOff, baseRune, bg.Foreground(baseColor))
	meteors := v.field.Meteors()
	for i := range meteors {
		v.drawMeteor(&meteors[i], bg)
	}
	v.drawRidge(v.top, topOff, topRune, bg.Foreground(topColor))
}

// drawRidge fills each column from its ridge row to the bottom, shifted by
// off virtual pixels.
func (v *View) drawRidge(profile []float64, off starfall.Vec2, r rune, st tcell.Style) {
	pad := v.overscan()
	dx := int(math.Round(off.X / CellW))
	dy := int(math.Round(off.Y / CellH))
	for x := 0; x < v.cols; x++ {
		i := x + pad - dx
		if i < 0 || i >= len(profile) {
			continue
		}
		start := int(math.Ceil(profile[i])) + dy
		for y := max(start, 0); y < v.rows; y++ {
			v.screen.SetContent(x, y, r, nil, st)
		}
	}
}

// drawMeteor plots the trail one cell at a time from tail to head, fading
// from transparent gold to white, then the head glyph.
func (v *View) drawMeteor(m *starfall.Meteor, bg tcell.Style) {
	tx, ty := m.Tail()
	steps := int(math.Ceil(m.TrailLen / CellW))
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(max(steps, 1)) // 0 at tail, 1 at head
		px := tx + (m.X-tx)*t
		py := ty + (m.Y-ty)*t
		v.plot(px, py, trailRune, bg.Foreground(trailColor(t)))
	}
	v.plot(m.X, m.Y, headRune, bg.Foreground(headGold).Bold(true))
}

// plot draws r at the cell containing the virtual pixel (px, py).
func (v *View) plot(px, py float64, r rune, st tcell.Style) {
	cx := int(math.Floor(px / CellW))
	cy := int(math.Floor(py / CellH))
	if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
		return
	}
	v.screen.SetContent(cx, cy, r, nil, st)
}

// trailColor blends the trail gradient over the background at t, 0 at the
// tail and 1 at the head. Terminals lack alpha, so opacity becomes a mix.
func trailColor(t float64) tcell.Color {
	head := starfall.TrailHeadColor
	tail := starfall.TrailTailColor
	a := tail.A + (head.A-tail.A)*t
	mix := func(hc, tc float64, bgc int32) int32 {
		c := (tc + (hc-tc)*t) * 255
		return int32(math.Round(c*a + float64(bgc)*(1-a)))
	}
	return tcell.NewRGBColor(mix(head.R, tail.R, 5), mix(head.G, tail.G, 5), mix(head.B, tail.B, 13))
}
