package starfall

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the current frame to be saved once Draw finishes, as
// ScreenshotDir/<timestamp>_<label>.png.
func (h *Hero) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots saves every queued capture from one readback. Failures are
// reported on stderr; a capture is never retried.
func (h *Hero) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	labels := h.screenshotQueue
	h.screenshotQueue = h.screenshotQueue[:0]

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[starfall] screenshot: %v\n", err)
		return
	}
	frame := frameNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(h.ScreenshotDir, name), frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[starfall] screenshot: %v\n", err)
		}
	}
}

// frameNRGBA reads screen back and un-premultiplies it for PNG encoding.
func frameNRGBA(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for p := img.Pix; len(p) >= 4; p = p[4:] {
		a := int(p[3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			p[c] = uint8(min(int(p[c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', and turns anything
// else into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return r
		case r == '-' || r == '.':
			return r
		}
		return '_'
	}, label)
}
