package editor

import "github.com/Faultbox/polytope4d/pkg/math"

// Point is a projected vertex.
type Point struct {
	Pos      math.Vec2
	Selected bool
}

// Segment is a projected edge.
type Segment struct {
	A, B     math.Vec2
	Selected bool
}

// MeshView is what the renderer draws for one mesh. Elements without a
// projection this frame are left out.
type MeshView struct {
	Points   []Point
	Segments []Segment
}

// GizmoView describes the manipulation handles.
type GizmoView struct {
	Visible  bool // false when nothing is selected
	Center   math.Vec2
	Tips     [4]math.Vec2
	TipOK    [4]bool
	Selected int // -1 when no axis is selected
	Grabbed  bool

	// Position the grabbed selection has been dragged to.
	Trail   math.Vec2
	TrailOK bool
}

// AxesView describes the orientation indicator.
type AxesView struct {
	Origin math.Vec2
	Tips   [4]math.Vec2
	TipOK  [4]bool
}

// View is the complete output of one frame.
type View struct {
	Meshes       []MeshView
	Gizmo        GizmoView
	Axes         AxesView
	ShowVertices bool
}

// View snapshots the projections computed by the last Update.
func (e *Editor) View() View {
	v := View{
		Meshes:       make([]MeshView, 0, len(e.Objects)),
		ShowVertices: e.Modes.Vertex,
	}

	for _, m := range e.Meshes() {
		mv := MeshView{
			Points:   make([]Point, 0, len(m.Vertices)),
			Segments: make([]Segment, 0, len(m.Edges)),
		}
		for _, vert := range m.Vertices {
			if pos, ok := vert.Projection(); ok {
				mv.Points = append(mv.Points, Point{Pos: pos, Selected: vert.Selected})
			}
		}
		for _, edge := range m.Edges {
			a, okA := m.Vertices[edge.A].Projection()
			b, okB := m.Vertices[edge.B].Projection()
			if okA && okB {
				mv.Segments = append(mv.Segments, Segment{A: a, B: b, Selected: edge.Selected})
			}
		}
		v.Meshes = append(v.Meshes, mv)
	}

	g := e.Gizmo
	v.Gizmo = GizmoView{
		Visible:  g.Pos != nil && g.PosProjected,
		Center:   g.PosProj,
		Selected: -1,
		Grabbed:  g.Grabbed,
		Trail:    g.GrabNowProj,
		TrailOK:  g.GrabNowProjected,
	}
	if i, ok := g.SelectedAxis(); ok {
		v.Gizmo.Selected = i
	}
	for i, ax := range g.Axes {
		v.Gizmo.Tips[i], v.Gizmo.TipOK[i] = ax.Proj, ax.Projected
	}

	v.Axes.Origin = e.Axes.Offset
	v.Axes.Tips, v.Axes.TipOK = e.Axes.Tips()

	return v
}
