package renderer

import (
	"github.com/Faultbox/polytope4d/internal/editor"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// Palette.
var (
	Background    = Color{0.8, 0.8, 0.8, 1}
	EdgeColor     = Color{0.1, 0.1, 0.1, 1}
	SelectedEdge  = Color{0.1, 0.6, 1.0, 1}
	SelectedHalo  = Color{0.1, 0.2, 0.4, 1}
	VertexColor   = Color{0.1, 0.1, 0.1, 1}
	SelectedPoint = Color{0.0, 0.6, 1.0, 1}
	PointHalo     = Color{0.0, 0.2, 0.4, 1}
	LabelColor    = Color{0.3, 0.3, 0.3, 1}
)

// AxisColors are X, Y, Z, W.
var AxisColors = [4]Color{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 0, 1, 1},
}

// AxisNames label the reference axes.
var AxisNames = [4]string{"X", "Y", "Z", "W"}

// Style sets sizes that are not fixed by the palette.
type Style struct {
	PointSize    float64 // radius of an unselected vertex
	ShowVertices bool    // draw vertices even outside vertex mode
}

// DefaultStyle matches the stock look.
func DefaultStyle() Style {
	return Style{PointSize: 2}
}

// Build converts one frame of editor output into triangles.
// Draw order: edges, vertices, reference axes, gizmo.
func Build(b *Batch, v editor.View, s Style) {
	if s.PointSize <= 0 {
		s.PointSize = DefaultStyle().PointSize
	}

	for _, m := range v.Meshes {
		for _, seg := range m.Segments {
			if seg.Selected {
				b.Line(seg.A, seg.B, 2, SelectedHalo)
				b.Line(seg.A, seg.B, 1, SelectedEdge)
			} else {
				b.Line(seg.A, seg.B, 1, EdgeColor)
			}
		}
	}

	if v.ShowVertices || s.ShowVertices {
		for _, m := range v.Meshes {
			for _, p := range m.Points {
				if p.Selected {
					b.Disc(p.Pos, s.PointSize+1, PointHalo)
					b.Disc(p.Pos, s.PointSize, SelectedPoint)
				} else {
					b.Disc(p.Pos, s.PointSize, VertexColor)
				}
			}
		}
	}

	buildAxes(b, v.Axes)
	buildGizmo(b, v.Gizmo)
}

func buildAxes(b *Batch, a editor.AxesView) {
	for i, tip := range a.Tips {
		if !a.TipOK[i] {
			continue
		}
		b.Line(a.Origin, tip, 2, AxisColors[i])
		b.Text(AxisNames[i], tip.Add(math.Vec2{X: 10}), LabelColor)
	}
}

func buildGizmo(b *Batch, g editor.GizmoView) {
	if !g.Visible {
		return
	}
	if g.Grabbed {
		if g.TrailOK && g.Selected >= 0 {
			b.Line(g.Center, g.Trail, 3, AxisColors[g.Selected])
		}
	} else {
		for i, tip := range g.Tips {
			if !g.TipOK[i] {
				continue
			}
			if i == g.Selected {
				b.Line(g.Center, tip, 3, AxisColors[i])
			} else {
				b.Line(g.Center, tip, 2, AxisColors[i].WithAlpha(0.7))
			}
		}
	}
	b.Disc(g.Center, 3, PointHalo)
	b.Disc(g.Center, 2, SelectedPoint)
}
