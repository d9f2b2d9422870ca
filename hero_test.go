package starfall

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testHero() *Hero {
	cfg := DefaultFieldConfig()
	cfg.Seed = 5
	return NewHero(HeroConfig{
		Field:    cfg,
		Parallax: InstantParallaxConfig(),
		Width:    800,
		Height:   600,
	})
}

func TestNewHeroDefaults(t *testing.T) {
	h := testHero()
	if h.Field().Len() != DefaultMeteorCount {
		t.Errorf("Len() = %d, want %d", h.Field().Len(), DefaultMeteorCount)
	}
	if h.Region() != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Region() = %v, want full surface", h.Region())
	}
	if h.Star() == nil || h.Preloader() == nil {
		t.Error("expected default star sprite and preloader")
	}
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
	if NewHero(HeroConfig{NoPreloader: true}).Preloader() != nil {
		t.Error("NoPreloader should disable the overlay")
	}
}

func TestHandlePointerEnterMoveLeave(t *testing.T) {
	h := testHero()

	h.handlePointer(800, 600, true)
	if got := h.Parallax().Target(); got != (Vec2{1, 1}) {
		t.Fatalf("Target() = %v, want {1 1}", got)
	}
	h.handlePointer(200, 150, true)
	if got := h.Parallax().Target(); got != (Vec2{-0.5, -0.5}) {
		t.Fatalf("Target() = %v, want {-0.5 -0.5}", got)
	}
	h.handlePointer(0, 0, false)
	if got := h.Parallax().Target(); got != (Vec2{}) {
		t.Fatalf("Target() = %v after leave, want zero", got)
	}
}

func TestHandlePointerOutsideRegionIsLeave(t *testing.T) {
	h := testHero()
	h.SetRegion(Rect{X: 100, Y: 100, Width: 200, Height: 200})

	h.handlePointer(300, 300, true)
	if h.Parallax().Target() != (Vec2{1, 1}) {
		t.Fatalf("Target() = %v, want {1 1}", h.Parallax().Target())
	}
	h.handlePointer(500, 500, true)
	if h.Parallax().Target() != (Vec2{}) {
		t.Errorf("Target() = %v after leaving region, want zero", h.Parallax().Target())
	}
}

func TestHandlePointerOutsideNeverEntered(t *testing.T) {
	h := testHero()
	h.SetRegion(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	h.Parallax().SetTarget(0.3, 0.3)
	h.handlePointer(500, 500, true)
	if h.Parallax().Target() != (Vec2{0.3, 0.3}) {
		t.Error("pointer that never entered should not clear the target")
	}
}

func TestLayoutResizesFieldAndRegion(t *testing.T) {
	h := testHero()
	w, ht := h.Layout(1024, 768)
	if w != 1024 || ht != 768 {
		t.Errorf("Layout() = (%d, %d), want (1024, 768)", w, ht)
	}
	if fw, fh := h.Field().Bounds(); fw != 1024 || fh != 768 {
		t.Errorf("field bounds = (%v, %v), want (1024, 768)", fw, fh)
	}
	if h.Region() != (Rect{Width: 1024, Height: 768}) {
		t.Errorf("Region() = %v, want full surface", h.Region())
	}
}

func TestLayoutKeepsFixedRegion(t *testing.T) {
	h := testHero()
	fixed := Rect{X: 10, Y: 10, Width: 100, Height: 100}
	h.SetRegion(fixed)
	h.Layout(1024, 768)
	if h.Region() != fixed {
		t.Errorf("Region() = %v, want %v", h.Region(), fixed)
	}
	h.SetRegion(Rect{})
	if h.Region() != (Rect{Width: 1024, Height: 768}) {
		t.Errorf("Region() = %v after reset, want full surface", h.Region())
	}
}

func TestUpdateTicksFieldAndParallax(t *testing.T) {
	h := testHero()
	h.InjectMove(800, 0)
	if err := h.Update(); err != nil {
		t.Fatal(err)
	}
	if h.Field().Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", h.Field().Ticks())
	}
	if got := h.Parallax().Offset(); got != (Vec2{1, -1}) {
		t.Errorf("Offset() = %v, want {1 -1} with instant blend", got)
	}
}

func TestUpdateHidesPreloaderWhenStarSettles(t *testing.T) {
	h := testHero()
	h.InjectMove(1, 1)
	if err := h.Update(); err != nil {
		t.Fatal(err)
	}
	if !h.Preloader().Hiding() {
		t.Error("preloader should start hiding once the star has settled")
	}
}

func TestUpdateFuncError(t *testing.T) {
	h := testHero()
	h.SetUpdateFunc(func() error { return ebiten.Termination })
	h.InjectMove(1, 1)
	if err := h.Update(); err != ebiten.Termination {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestDrawDoesNotMutateMeteors(t *testing.T) {
	h := testHero()
	before := append([]Meteor(nil), h.Field().Meteors()...)
	h.Draw(ebiten.NewImage(800, 600))
	for i := range before {
		if before[i] != h.Field().Meteors()[i] {
			t.Fatalf("meteor %d changed during Draw", i)
		}
	}
}

func TestHeroSizedByLayoutScattersMeteors(t *testing.T) {
	h := NewHero(HeroConfig{Field: FieldConfig{Seed: 12}})
	h.Layout(1280, 720)
	origin := 0
	for _, m := range h.Field().Meteors() {
		if m.X == 0 && m.Y == 0 {
			origin++
		}
		if m.X < 0 || m.X >= 1280 || m.Y < 0 || m.Y >= 720 {
			t.Errorf("meteor at (%v, %v), want inside 1280x720", m.X, m.Y)
		}
	}
	if origin != 0 {
		t.Errorf("%d meteors left at the origin", origin)
	}
}
