package termview

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/starfall"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := DefaultConfig()
	cfg.Field.Seed = 9
	return New(screen, cfg), screen
}

func TestNewSizesFieldToVirtualPixels(t *testing.T) {
	v, _ := newTestView(t)
	w, h := v.Field().Bounds()
	if w != 80*CellW || h != 24*CellH {
		t.Errorf("Bounds() = (%v, %v), want (%d, %d)", w, h, 80*CellW, 24*CellH)
	}
	if v.Field().Len() != starfall.DefaultMeteorCount {
		t.Errorf("Len() = %d, want %d", v.Field().Len(), starfall.DefaultMeteorCount)
	}
}

func TestDrawPlotsHeadAtMeteorCell(t *testing.T) {
	v, screen := newTestView(t)
	meteors := v.Field().Meteors()
	for i := range meteors {
		// Park everything off screen except the first meteor.
		meteors[i].X, meteors[i].Y = -1000, -1000
	}
	meteors[0].X, meteors[0].Y = 100, 100

	v.Draw()

	mainc, _, style, _ := screen.GetContent(100/CellW, 100/CellH)
	if mainc != headRune {
		t.Fatalf("head cell = %q, want %q", mainc, headRune)
	}
	fg, bg, _ := style.Decompose()
	if fg != headGold {
		t.Errorf("head foreground = %v, want %v", fg, headGold)
	}
	if bg != background {
		t.Errorf("head background = %v, want %v", bg, background)
	}

	tail, _, _, _ := screen.GetContent(100/CellW-2, 100/CellH-1)
	if tail != trailRune && tail != ' ' {
		t.Errorf("cell behind head = %q, want trail or blank", tail)
	}
}

func TestDrawFillsRidgeToBottom(t *testing.T) {
	v, screen := newTestView(t)
	for i := range v.Field().Meteors() {
		v.Field().Meteors()[i].X = -1000
	}
	v.Draw()
	for x := 0; x < 80; x++ {
		mainc, _, _, _ := screen.GetContent(x, 23)
		if mainc != topRune && mainc != baseRune {
			t.Fatalf("column %d bottom row = %q, want a ridge", x, mainc)
		}
	}
	mainc, _, _, _ := screen.GetContent(40, 0)
	if mainc != ' ' {
		t.Errorf("top row = %q, want sky", mainc)
	}
}

func TestMouseSetsTargetAndFocusLossClears(t *testing.T) {
	v, _ := newTestView(t)

	if quit := v.HandleEvent(tcell.NewEventMouse(79, 23, tcell.ButtonNone, tcell.ModNone)); quit {
		t.Fatal("mouse event should not quit")
	}
	got := v.Parallax().Target()
	wantX := float64(79*CellW+CellW/2)/(80*CellW)*2 - 1
	wantY := float64(23*CellH+CellH/2)/(24*CellH)*2 - 1
	if math.Abs(got.X-wantX) > 1e-12 || math.Abs(got.Y-wantY) > 1e-12 {
		t.Fatalf("Target() = %v, want (%v, %v)", got, wantX, wantY)
	}

	v.HandleEvent(tcell.NewEventFocus(false))
	if v.Parallax().Target() != (starfall.Vec2{}) {
		t.Errorf("Target() = %v after focus loss, want zero", v.Parallax().Target())
	}
}

func TestTickEasesTowardPointer(t *testing.T) {
	v, _ := newTestView(t)
	v.HandleEvent(tcell.NewEventMouse(79, 0, tcell.ButtonNone, tcell.ModNone))
	v.Tick()
	off := v.Parallax().Offset()
	if off.X <= 0 || off.X >= v.Parallax().Target().X {
		t.Errorf("Offset().X = %v after one tick, want partway to %v", off.X, v.Parallax().Target().X)
	}
	if v.Field().Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", v.Field().Ticks())
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}
	v, _ := newTestView(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResizeEvent(t *testing.T) {
	v, screen := newTestView(t)
	screen.SetSize(40, 12)
	v.HandleEvent(tcell.NewEventResize(40, 12))
	if w, h := v.Field().Bounds(); w != 40*CellW || h != 12*CellH {
		t.Errorf("Bounds() = (%v, %v), want (%d, %d)", w, h, 40*CellW, 12*CellH)
	}
}

func TestTrailColorEndpoints(t *testing.T) {
	if got := trailColor(0); got != background {
		t.Errorf("trailColor(0) = %v, want background %v", got, background)
	}
	// 80% white over the background.
	want := tcell.NewRGBColor(205, 205, 207)
	if got := trailColor(1); got != want {
		t.Errorf("trailColor(1) = %v, want %v", got, want)
	}
}
