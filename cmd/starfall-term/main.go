// Starfall-term renders the meteor hero in a terminal. Moving the mouse over
// the terminal shifts the ridges; Esc, q or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/starfall"
	"github.com/phanxgames/starfall/internal/termview"
)

const frameDuration = time.Second / 60

func main() {
	count := flag.Int("count", starfall.DefaultMeteorCount, "number of meteors")
	instant := flag.Bool("instant", false, "move ridges straight to the pointer with no easing")
	seed := flag.Uint64("seed", 0, "deterministic spawn seed (0 = random)")
	flag.Parse()

	cfg := termview.DefaultConfig()
	cfg.Field.Count = *count
	cfg.Field.Seed = *seed
	if *instant {
		cfg.Parallax.Blend = 1
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg termview.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	view := termview.New(screen, cfg)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		// Drain pending input before the frame.
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok || view.HandleEvent(ev) {
					return nil
				}
			default:
				break drain
			}
		}

		view.Tick()
		view.Draw()
		screen.Show()

		<-ticker.C
	}
}
