package renderer

import (
	gomath "math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/polytope4d/pkg/math"
)

// Color is straight RGBA in [0, 1].
type Color [4]float32

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// floatsPerVertex is x, y, r, g, b, a.
const floatsPerVertex = 6

// discSegments is the number of triangles in a point disc.
const discSegments = 10

// Batch collects screen-space triangles for one draw call.
// Coordinates are pixels with the origin at the top-left corner.
type Batch struct {
	Vertices []float32
}

// Len returns the number of vertices in the batch.
func (b *Batch) Len() int {
	return len(b.Vertices) / floatsPerVertex
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
}

func (b *Batch) vertex(x, y float64, c Color) {
	b.Vertices = append(b.Vertices, float32(x), float32(y), c[0], c[1], c[2], c[3])
}

// Quad appends an axis-aligned rectangle.
func (b *Batch) Quad(x, y, w, h float64, c Color) {
	b.vertex(x, y, c)
	b.vertex(x+w, y, c)
	b.vertex(x+w, y+h, c)
	b.vertex(x, y, c)
	b.vertex(x+w, y+h, c)
	b.vertex(x, y+h, c)
}

// Line appends a segment of the given pixel width as two triangles.
// Zero-length segments are skipped.
func (b *Batch) Line(p, q math.Vec2, width float64, c Color) {
	d := q.Sub(p)
	l := d.Length()
	if l < math.Epsilon {
		return
	}
	n := math.Vec2{X: -d.Y / l, Y: d.X / l}.Scale(width / 2)

	p0, p1 := p.Add(n), p.Sub(n)
	q0, q1 := q.Add(n), q.Sub(n)
	b.vertex(p0.X, p0.Y, c)
	b.vertex(q0.X, q0.Y, c)
	b.vertex(q1.X, q1.Y, c)
	b.vertex(p0.X, p0.Y, c)
	b.vertex(q1.X, q1.Y, c)
	b.vertex(p1.X, p1.Y, c)
}

// Disc appends a filled circle.
func (b *Batch) Disc(center math.Vec2, r float64, c Color) {
	step := 2 * gomath.Pi / discSegments
	for i := 0; i < discSegments; i++ {
		a0, a1 := float64(i)*step, float64(i+1)*step
		b.vertex(center.X, center.Y, c)
		b.vertex(center.X+r*gomath.Cos(a0), center.Y+r*gomath.Sin(a0), c)
		b.vertex(center.X+r*gomath.Cos(a1), center.Y+r*gomath.Sin(a1), c)
	}
}

// Text appends s in the 7x13 bitmap face, one quad per lit pixel.
// at is the left end of the baseline.
func (b *Batch) Text(s string, at math.Vec2, c Color) {
	face := basicfont.Face7x13
	dot := fixed.P(int(gomath.Round(at.X)), int(gomath.Round(at.Y)))
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, mp, advance, ok := face.Glyph(dot, r)
		if ok {
			for y := dr.Min.Y; y < dr.Max.Y; y++ {
				for x := dr.Min.X; x < dr.Max.X; x++ {
					if _, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA(); a > 0 {
						b.Quad(float64(x), float64(y), 1, 1, c)
					}
				}
			}
		}
		dot.X += advance
		prev = r
	}
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}
