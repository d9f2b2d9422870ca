// Starfall opens the meteor hero in a resizable window: fifteen stars fall
// diagonally between two ridge layers that drift against the mouse.
//
// A star image can be given with -star or picked from a file dialog with
// -pick. Without one, or if it fails to load, a procedural glow is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"github.com/phanxgames/starfall"
)

const windowTitle = "Starfall"

type options struct {
	width, height int
	count         int
	star          string
	pick          bool
	base, top     string
	instant       bool
	blend         float64
	seed          uint64
	fps           bool
	debug         bool
	script        string
	shots         string
}

func main() {
	var o options
	flag.IntVar(&o.width, "width", 1280, "initial window width")
	flag.IntVar(&o.height, "height", 720, "initial window height")
	flag.IntVar(&o.count, "count", starfall.DefaultMeteorCount, "number of meteors")
	flag.StringVar(&o.star, "star", "", "star image path (PNG or JPEG)")
	flag.BoolVar(&o.pick, "pick", false, "choose the star image from a file dialog")
	flag.StringVar(&o.base, "base", "", "base layer image path (default: generated ridge)")
	flag.StringVar(&o.top, "top", "", "top layer image path (default: generated ridge)")
	flag.BoolVar(&o.instant, "instant", false, "move layers straight to the pointer with no easing")
	flag.Float64Var(&o.blend, "blend", starfall.DefaultParallaxBlend, "parallax smoothing per frame, (0, 1]")
	flag.Uint64Var(&o.seed, "seed", 0, "deterministic spawn seed (0 = random)")
	flag.BoolVar(&o.fps, "fps", false, "show FPS/TPS overlay")
	flag.BoolVar(&o.debug, "debug", false, "print per-frame stats to stderr")
	flag.StringVar(&o.script, "script", "", "JSON test script to run, then exit")
	flag.StringVar(&o.shots, "screenshots", "screenshots", "directory for script screenshots")
	flag.Parse()

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o options) error {
	if o.pick {
		path, err := pickStar()
		if err != nil {
			return err
		}
		if path != "" {
			o.star = path
		}
	}

	pcfg := starfall.DefaultParallaxConfig()
	pcfg.Blend = o.blend
	if o.instant {
		pcfg = starfall.InstantParallaxConfig()
	}
	fcfg := starfall.DefaultFieldConfig()
	fcfg.Count = o.count
	fcfg.Seed = o.seed

	overscan := pcfg.Shift * pcfg.TopScale
	hero := starfall.NewHero(starfall.HeroConfig{
		Field:      fcfg,
		Parallax:   pcfg,
		Star:       starfall.LoadStarFile(o.star),
		Base:       loadLayer(o.base, o.width, o.height, baseRidge, overscan),
		Top:        loadLayer(o.top, o.width, o.height, topRidge, overscan),
		ClearColor: starfall.Color{R: 0.02, G: 0.02, B: 0.05, A: 1},
		Width:      o.width,
		Height:     o.height,
	})
	hero.ScreenshotDir = o.shots

	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := starfall.LoadTestScript(data)
		if err != nil {
			return err
		}
		hero.SetTestRunner(runner)
		hero.SetUpdateFunc(func() error {
			if runner.Done() {
				return ebiten.Termination
			}
			return nil
		})
	}

	return starfall.Run(hero, starfall.RunConfig{
		Title:   windowTitle,
		Width:   o.width,
		Height:  o.height,
		ShowFPS: o.fps,
		Debug:   o.debug,
	})
}

var (
	baseRidge = starfall.RidgeConfig{
		Color:     starfall.Color{R: 0.11, G: 0.12, B: 0.2, A: 1},
		Baseline:  0.7,
		Amplitude: 0.08,
		Seed:      7,
	}
	topRidge = starfall.RidgeConfig{
		Color:     starfall.Color{R: 0.05, G: 0.05, B: 0.09, A: 1},
		Baseline:  0.84,
		Amplitude: 0.06,
		Seed:      11,
	}
)

// loadLayer loads path as a layer image, falling back to a generated ridge
// when path is empty or unreadable.
func loadLayer(path string, w, h int, ridge starfall.RidgeConfig, overscan float64) *starfall.Layer {
	if path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err == nil {
			return starfall.NewImageLayer(img, overscan)
		}
		log.Printf("layer %s: %v; using generated ridge", path, err)
	}
	return starfall.NewRidgeLayer(w, h, ridge, overscan)
}

// pickStar asks for a star image. Cancelling the dialog is not an error and
// returns an empty path.
func pickStar() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose Star Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("pick star image: %w", err)
	}
	return path, nil
}
