// Package gizmo implements the axis handles used to translate a selection
// along one 4D basis direction, and the static orientation indicator.
package gizmo

import (
	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/engine/picking"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// Length is the 4D length of each handle.
const Length = 0.5

// State is the interaction state of a Gizmo.
type State int

const (
	Idle State = iota
	Hovered
	Grabbed
)

func (s State) String() string {
	switch s {
	case Hovered:
		return "hovered"
	case Grabbed:
		return "grabbed"
	}
	return "idle"
}

// Axis is one basis direction with its screen projection.
type Axis struct {
	Dir      math.Vec4
	Selected bool

	Proj      math.Vec2
	Projected bool
}

// basis returns the four axes scaled to length.
func basis(length float64) [4]Axis {
	return [4]Axis{
		{Dir: math.Vec4{X: length}},
		{Dir: math.Vec4{Y: length}},
		{Dir: math.Vec4{Z: length}},
		{Dir: math.Vec4{W: length}},
	}
}

// Gizmo is anchored at the selection centroid. Pos is nil when nothing is
// selected; GrabStart and GrabNow are set only while grabbed.
type Gizmo struct {
	Axes [4]Axis

	Pos          *math.Vec4
	PosProj      math.Vec2
	PosProjected bool

	Grabbed   bool
	GrabStart *math.Vec4
	GrabNow   *math.Vec4

	GrabNowProj      math.Vec2
	GrabNowProjected bool
}

// New returns an idle gizmo with no position.
func New() *Gizmo {
	return &Gizmo{Axes: basis(Length)}
}

// State reports the current interaction state.
func (g *Gizmo) State() State {
	if g.Grabbed {
		return Grabbed
	}
	if _, ok := g.SelectedAxis(); ok {
		return Hovered
	}
	return Idle
}

// SelectedAxis returns the index of the selected axis.
func (g *Gizmo) SelectedAxis() (int, bool) {
	for i, a := range g.Axes {
		if a.Selected {
			return i, true
		}
	}
	return -1, false
}

// MoveTo anchors the gizmo at pos, or removes it when ok is false.
func (g *Gizmo) MoveTo(pos math.Vec4, ok bool) {
	if !ok {
		g.Pos = nil
		g.PosProjected = false
		return
	}
	g.Pos = &pos
}

// Project computes screen positions for the centroid, every axis tip
// (centroid + direction) and the grab trail.
func (g *Gizmo) Project(p math.Projector, a math.Angle) {
	if g.Pos == nil {
		return
	}
	pos := *g.Pos
	g.PosProj, g.PosProjected = p.Project(pos, a)
	for i := range g.Axes {
		ax := &g.Axes[i]
		ax.Proj, ax.Projected = p.Project(pos.Add(ax.Dir), a)
	}

	g.GrabNowProjected = false
	if g.GrabNow != nil {
		g.GrabNowProj, g.GrabNowProjected = p.Project(*g.GrabNow, a)
	}
}

// Hover picks the axis nearest to (x, y) and makes it the only selected
// axis. When no axis is in range the selection is cleared. Hover does
// nothing while grabbed or when the gizmo has no position.
func (g *Gizmo) Hover(x, y float64) (int, bool) {
	if g.Grabbed || g.Pos == nil {
		return -1, false
	}

	// Centroid plus four tips, with one edge from the centroid to each tip.
	handles := &mesh.Mesh{
		Vertices: make([]mesh.Vertex, 5),
		Edges:    make([]mesh.Edge, 4),
	}
	handles.Vertices[0] = mesh.Vertex{Proj: g.PosProj, Projected: g.PosProjected}
	for i, ax := range g.Axes {
		handles.Vertices[i+1] = mesh.Vertex{Proj: ax.Proj, Projected: ax.Projected}
		handles.Edges[i] = mesh.Edge{A: 0, B: i + 1}
	}

	idx, ok := picking.ClosestEdge(x, y, handles)
	g.selectAxis(idx)
	return idx, ok
}

func (g *Gizmo) selectAxis(idx int) {
	for i := range g.Axes {
		g.Axes[i].Selected = i == idx
	}
}

// ClearSelection deselects every axis. It has no effect while grabbed.
func (g *Gizmo) ClearSelection() {
	if !g.Grabbed {
		g.selectAxis(-1)
	}
}

// TryGrab starts a constrained drag if an axis is selected.
func (g *Gizmo) TryGrab() bool {
	if _, ok := g.SelectedAxis(); !ok || g.Pos == nil {
		return false
	}
	start := *g.Pos
	g.GrabStart = &start
	g.GrabNow = nil
	g.Grabbed = true
	return true
}

// Ungrab ends a constrained drag.
func (g *Gizmo) Ungrab() {
	g.Grabbed = false
	g.GrabStart = nil
	g.GrabNow = nil
	g.GrabNowProjected = false
}

// MotionDelta converts a mouse delta into a 4D displacement along the
// grabbed axis. The delta is projected onto the axis's screen direction and
// divided by that direction's length, so dragging the mouse by the full
// length of the drawn handle moves by the full axis vector.
//
// The result is zero when not grabbed or when the axis or the centroid has
// no projection.
func (g *Gizmo) MotionDelta(dx, dy float64) math.Vec4 {
	idx, ok := g.SelectedAxis()
	if !g.Grabbed || !ok || !g.PosProjected {
		return math.Vec4{}
	}
	ax := g.Axes[idx]
	if !ax.Projected {
		return math.Vec4{}
	}

	dir := ax.Proj.Sub(g.PosProj)
	l2 := dir.Dot(dir)
	if l2 < math.Epsilon {
		return math.Vec4{}
	}
	delta := ax.Dir.Scale(dir.Dot(math.Vec2{X: dx, Y: dy}) / l2)

	var now math.Vec4
	switch {
	case g.GrabNow != nil:
		now = g.GrabNow.Add(delta)
	case g.GrabStart != nil:
		now = g.GrabStart.Add(delta)
	}
	g.GrabNow = &now
	return delta
}
