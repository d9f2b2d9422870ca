package starfall

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Trail gradient end points: bright white at the head, transparent gold at
// the tail.
var (
	TrailHeadColor = Color{1, 1, 1, 0.8}
	TrailTailColor = Color{1, 215.0 / 255, 0, 0}
)

// capSegments is the number of triangles in the half-disc trail cap.
const capSegments = 8

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whiteImage *ebiten.Image

// ensureWhite returns the 1x1 interior of a lazily created 3x3 white image.
// Sampling the interior keeps linear filtering from bleeding transparent
// edges into the trail.
func ensureWhite() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// trailWidth is the stroke width for a meteor of the given size.
func trailWidth(size float64) float64 {
	return 2 + size/30
}

func vertexAt(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}

// appendTrail appends the trail geometry for m: a quad from head to tail with
// the head/tail colours on its ends, plus a half fan for the rounded head cap.
// Colours are straight alpha.
func appendTrail(verts []ebiten.Vertex, idx []uint16, m *Meteor) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(verts))
	tx, ty := m.Tail()
	hw := trailWidth(m.Size) / 2
	nx, ny := -math.Sin(m.Angle)*hw, math.Cos(m.Angle)*hw

	verts = append(verts,
		vertexAt(m.X+nx, m.Y+ny, TrailHeadColor),
		vertexAt(m.X-nx, m.Y-ny, TrailHeadColor),
		vertexAt(tx+nx, ty+ny, TrailTailColor),
		vertexAt(tx-nx, ty-ny, TrailTailColor),
	)
	idx = append(idx, base, base+1, base+2, base+1, base+3, base+2)

	// Cap: a half fan ahead of the head, from one quad corner to the other,
	// so no pixel is covered by both the quad and the cap.
	centre := uint16(len(verts))
	verts = append(verts, vertexAt(m.X, m.Y, TrailHeadColor))
	for i := 0; i <= capSegments; i++ {
		a := m.Angle - math.Pi/2 + float64(i)/capSegments*math.Pi
		verts = append(verts, vertexAt(m.X+math.Cos(a)*hw, m.Y+math.Sin(a)*hw, TrailHeadColor))
	}
	for i := 0; i < capSegments; i++ {
		idx = append(idx, centre, centre+1+uint16(i), centre+2+uint16(i))
	}
	return verts, idx
}

// headGeoM positions an iw×ih image so it is drawn size×size, centred on the
// head and rotated by the meteor's rotation.
func headGeoM(m *Meteor, iw, ih int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(iw)/2, -float64(ih)/2)
	g.Scale(m.Size/float64(iw), m.Size/float64(ih))
	g.Rotate(m.Rotation)
	g.Translate(m.X, m.Y)
	return g
}

// fieldRenderer holds reusable geometry buffers for Field.Render.
type fieldRenderer struct {
	verts []ebiten.Vertex
	idx   []uint16
}

// Render draws every meteor's trail and head onto dst. It does not clear dst
// and does not change meteor state. A field with no area draws nothing. A nil
// sprite draws the procedural glow.
func (f *Field) Render(dst *ebiten.Image, sprite *StarSprite) {
	if dst == nil || f.width <= 0 || f.height <= 0 {
		return
	}
	r := &f.render
	var head *ebiten.Image
	if sprite != nil {
		head = sprite.Image()
	} else {
		head = defaultGlow()
	}
	iw, ih := head.Bounds().Dx(), head.Bounds().Dy()
	blend := f.config.HeadBlend.EbitenBlend()

	for i := range f.meteors {
		m := &f.meteors[i]

		r.verts, r.idx = appendTrail(r.verts[:0], r.idx[:0], m)
		var top ebiten.DrawTrianglesOptions
		top.AntiAlias = true
		dst.DrawTriangles(r.verts, r.idx, ensureWhite(), &top)

		var op ebiten.DrawImageOptions
		op.GeoM = headGeoM(m, iw, ih)
		op.Filter = ebiten.FilterLinear
		op.Blend = blend
		dst.DrawImage(head, &op)
	}
}
