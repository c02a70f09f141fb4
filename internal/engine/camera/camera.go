// Package camera drives the 4D view rotation from mouse input.
package camera

import (
	gomath "math"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// View accumulates the six plane angles applied before projection.
//
// Dragging turns XW/YW, or XZ/YZ with shift held. Only YZ and YW are
// clamped; XZ, XW and ZW wrap freely.
type View struct {
	Angle math.Angle

	// Camera distance along W and then Z.
	Distance float64

	// Pixels of drag per radian.
	DragSensitivity float64
	// Scroll units per radian of ZW rotation.
	ScrollSensitivity float64
	// Bound for |YZ| and |YW|.
	ClampLimit float64

	// Commit the rotation into the meshes when a drag ends.
	CommitOnRelease bool
}

// NewView creates a view with default settings.
func NewView() *View {
	return &View{
		Distance:          5.0,
		DragSensitivity:   200.0,
		ScrollSensitivity: 100.0,
		ClampLimit:        gomath.Pi / 2,
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (v *View) HandleDrag(deltaX, deltaY float64, shift bool) {
	dx := deltaX / v.DragSensitivity
	dy := deltaY / v.DragSensitivity

	if shift {
		v.Angle.YZ += dy
		v.Angle.XZ += dx
	} else {
		v.Angle.YW += dy
		v.Angle.XW += dx
	}

	v.Angle.YZ = clamp(v.Angle.YZ, -v.ClampLimit, v.ClampLimit)
	v.Angle.YW = clamp(v.Angle.YW, -v.ClampLimit, v.ClampLimit)
}

// HandleScroll turns the ZW plane.
func (v *View) HandleScroll(delta float64) {
	v.Angle.ZW += delta / v.ScrollSensitivity
}

// Commit writes the current rotation into every mesh and resets the angles,
// so the same rotation is never applied twice.
func (v *View) Commit(meshes ...*mesh.Mesh) {
	if v.Angle.IsZero() {
		return
	}
	for _, m := range meshes {
		m.Freeze(v.Angle)
	}
	v.Angle.Reset()
}

// Reset returns to the unrotated view.
func (v *View) Reset() {
	v.Angle.Reset()
}

// Projector returns a projector for a viewport of the given size.
func (v *View) Projector(width, height int) math.Projector {
	return math.NewProjector(v.Distance, float64(width), float64(height))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
