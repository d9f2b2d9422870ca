package starfall

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner. The text
// is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	since float64
	text  string
}

func (o *fpsOverlay) draw(screen *ebiten.Image, dt float64) {
	o.since += dt
	if o.text == "" || o.since >= 0.5 {
		o.since = 0
		o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, o.text)
}
