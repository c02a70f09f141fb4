// Package editor owns the editing session: the open meshes, view rotation,
// gizmo and clipboard, and applies one frame of input at a time.
package editor

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/engine/camera"
	"github.com/Faultbox/polytope4d/internal/engine/gizmo"
	"github.com/Faultbox/polytope4d/internal/engine/input"
	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/logger"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// ErrNoObject is returned when an object ID is not in the session.
var ErrNoObject = errors.New("no such object")

// axesInset is the distance of the orientation indicator from the lower
// left corner of the viewport.
const axesInset = 100.0

// Object is one mesh in the session.
type Object struct {
	ID   uuid.UUID
	Mesh *mesh.Mesh
	Path string // file the mesh was loaded from or saved to, if any
}

// Editor is the per-frame controller. It is not safe for concurrent use;
// the frame loop owns it.
type Editor struct {
	Objects   []*Object
	Active    int // index into Objects that receives pastes
	Camera    *camera.View
	Gizmo     *gizmo.Gizmo
	Axes      *gizmo.ReferenceAxes
	Clipboard *mesh.Mesh
	Modes     SelectionModes

	Width, Height int

	// Scroll held back from a commit frame, applied on the next frame.
	pendingScroll float64
	// Freeze requested through Run outside of Update.
	pendingFreeze bool
}

// New creates an empty session for a viewport of the given size.
func New(view *camera.View, width, height int) *Editor {
	e := &Editor{
		Camera: view,
		Gizmo:  gizmo.New(),
		Axes:   gizmo.NewReferenceAxes(math.Vec2{}),
		Modes:  SelectionModes{Vertex: true},
	}
	e.Resize(width, height)
	return e
}

// Resize updates the viewport and re-anchors the orientation indicator.
func (e *Editor) Resize(width, height int) {
	e.Width, e.Height = width, height
	e.Axes.Offset = math.Vec2{X: axesInset, Y: float64(height) - axesInset}
}

// Projector returns the projector for the current viewport.
func (e *Editor) Projector() math.Projector {
	return e.Camera.Projector(e.Width, e.Height)
}

// Meshes returns every mesh in session order.
func (e *Editor) Meshes() []*mesh.Mesh {
	out := make([]*mesh.Mesh, len(e.Objects))
	for i, o := range e.Objects {
		out[i] = o.Mesh
	}
	return out
}

// AddObject appends m to the session and makes it active.
func (e *Editor) AddObject(m *mesh.Mesh, path string) *Object {
	o := &Object{ID: uuid.New(), Mesh: m, Path: path}
	e.Objects = append(e.Objects, o)
	e.Active = len(e.Objects) - 1
	logger.Debug("object added",
		zap.Stringer("id", o.ID),
		zap.String("name", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("edges", len(m.Edges)))
	e.recenter()
	return o
}

// Object returns the object with the given ID.
func (e *Editor) Object(id uuid.UUID) (*Object, bool) {
	for _, o := range e.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// ObjectByPath returns the first object loaded from path.
func (e *Editor) ObjectByPath(path string) (*Object, bool) {
	for _, o := range e.Objects {
		if o.Path != "" && o.Path == path {
			return o, true
		}
	}
	return nil, false
}

// RemoveObject drops an object from the session.
func (e *Editor) RemoveObject(id uuid.UUID) error {
	for i, o := range e.Objects {
		if o.ID != id {
			continue
		}
		e.Objects = append(e.Objects[:i], e.Objects[i+1:]...)
		if e.Active >= len(e.Objects) {
			e.Active = len(e.Objects) - 1
		}
		if e.Active < 0 {
			e.Active = 0
		}
		e.recenter()
		return nil
	}
	return ErrNoObject
}

// ReplaceObject swaps the mesh of an object, keeping its ID and path.
func (e *Editor) ReplaceObject(id uuid.UUID, m *mesh.Mesh) error {
	o, ok := e.Object(id)
	if !ok {
		return ErrNoObject
	}
	o.Mesh = m
	e.recenter()
	return nil
}

// recenter moves the gizmo to the centroid of the current selection.
func (e *Editor) recenter() {
	e.Gizmo.MoveTo(mesh.Centroid(e.Meshes()...))
}

// Update applies one frame of input, then reprojects everything.
func (e *Editor) Update(f input.Frame) {
	if f.Resized && f.Width > 0 && f.Height > 0 {
		e.Resize(f.Width, f.Height)
	}

	if f.Left.Clicked {
		e.Click(f.MouseX, f.MouseY, f.Shift)
	}

	if f.Right.Pressed {
		e.Gizmo.TryGrab()
	}

	commit := e.commits(f)

	switch {
	case f.Right.Down && e.Gizmo.Grabbed:
		e.translate(f.DeltaX, f.DeltaY)
	case commit:
		// Dragging resumes on the next frame.
	case f.Right.Down, f.Left.Down:
		if f.Moved() {
			e.Camera.HandleDrag(f.DeltaX, f.DeltaY, f.Shift)
		}
	}

	if f.Right.Released {
		e.Gizmo.Ungrab()
		e.recenter()
	}

	// A frame either accumulates rotation or commits it.
	if commit {
		e.pendingScroll += f.Scroll
		e.pendingFreeze = false
		e.Camera.Commit(e.Meshes()...)
	} else if s := f.Scroll + e.pendingScroll; s != 0 {
		e.Camera.HandleScroll(s)
		e.pendingScroll = 0
	}

	for _, a := range f.Actions {
		if a == input.ActionFreeze {
			continue
		}
		e.Run(a, f.Shift)
	}

	e.project()

	if f.Moved() && !e.Gizmo.Grabbed {
		e.Gizmo.Hover(f.MouseX, f.MouseY)
	}
}

// commits reports whether f writes the rotation into the meshes.
func (e *Editor) commits(f input.Frame) bool {
	if e.pendingFreeze || f.Has(input.ActionFreeze) {
		return true
	}
	if !e.Camera.CommitOnRelease {
		return false
	}
	return f.Left.Released || f.Right.Released
}

// translate moves the selection along the grabbed gizmo axis.
func (e *Editor) translate(dx, dy float64) {
	delta := e.Gizmo.MotionDelta(dx, dy)
	if delta == (math.Vec4{}) {
		return
	}
	// The gizmo stays at the grab point until release; GrabNow tracks the
	// moved position.
	for _, m := range e.Meshes() {
		m.Translate(delta)
	}
}

// project recomputes every projection for the current rotation.
func (e *Editor) project() {
	p := e.Projector()
	for _, m := range e.Meshes() {
		m.Project(p, e.Camera.Angle)
	}
	e.Gizmo.Project(p, e.Camera.Angle)
	e.Axes.Project(p, e.Camera.Angle)
}
