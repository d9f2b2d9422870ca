package starfall

import (
	"errors"
	"image"
	_ "image/jpeg" // register JPEG for star assets
	_ "image/png"  // register PNG for star assets
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

var errEmptyImage = errors.New("empty image")

// decodeResult is handed from the decode goroutine to the render loop.
type decodeResult struct {
	img image.Image
	err error
}

// StarSprite is the head image for every meteor. It always has something to
// draw: a decoded asset once one is ready, the procedural glow until then.
//
// Decoding runs on a goroutine; the GPU image is created on the caller's
// thread the first time Image sees the decoded result.
type StarSprite struct {
	fallback *ebiten.Image
	asset    *ebiten.Image
	pending  atomic.Pointer[decodeResult]
	done     chan struct{}
	source   string
	settled  bool
}

// NewStarSprite returns a sprite that only ever draws the fallback glow.
func NewStarSprite() *StarSprite {
	done := make(chan struct{})
	close(done)
	return &StarSprite{
		fallback: NewGlowImage(DefaultGlowSize),
		done:     done,
		settled:  true,
	}
}

// LoadStarFile starts loading the image at path and returns immediately.
// An empty path behaves like NewStarSprite.
func LoadStarFile(path string) *StarSprite {
	if path == "" {
		return NewStarSprite()
	}
	s := newLoadingSprite(path)
	go s.decode(func() (image.Image, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	})
	return s
}

// LoadStarFS starts loading name from fsys and returns immediately.
func LoadStarFS(fsys fs.FS, name string) *StarSprite {
	s := newLoadingSprite(name)
	go s.decode(func() (image.Image, error) {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	})
	return s
}

func newLoadingSprite(source string) *StarSprite {
	return &StarSprite{
		fallback: NewGlowImage(DefaultGlowSize),
		done:     make(chan struct{}),
		source:   source,
	}
}

func (s *StarSprite) decode(load func() (image.Image, error)) {
	img, err := load()
	if err == nil && (img == nil || img.Bounds().Empty()) {
		err = errEmptyImage
	}
	s.pending.Store(&decodeResult{img: img, err: err})
	close(s.done)
}

// Loaded returns a channel closed once decoding has finished, successfully
// or not.
func (s *StarSprite) Loaded() <-chan struct{} {
	return s.done
}

// Image returns the image to draw for a meteor head. Must be called from the
// render loop.
func (s *StarSprite) Image() *ebiten.Image {
	if !s.settled {
		s.settle()
	}
	if s.asset != nil {
		return s.asset
	}
	return s.fallback
}

// Ready reports whether the loaded asset is in use rather than the fallback.
func (s *StarSprite) Ready() bool {
	if !s.settled {
		s.settle()
	}
	return s.asset != nil
}

// Fallback returns the procedural glow image.
func (s *StarSprite) Fallback() *ebiten.Image {
	return s.fallback
}

// settle promotes a finished decode to a GPU image. A failed load settles on
// the fallback and is only reported in debug mode.
func (s *StarSprite) settle() {
	res := s.pending.Load()
	if res == nil {
		return
	}
	s.settled = true
	if res.err != nil {
		debugf("star asset %q: %v; using fallback glow", s.source, res.err)
		return
	}
	s.asset = ebiten.NewImageFromImage(res.img)
}
