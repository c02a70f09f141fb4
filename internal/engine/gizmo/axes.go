package gizmo

import "github.com/Faultbox/polytope4d/pkg/math"

// ReferenceDistance is the camera distance used for the orientation indicator.
const ReferenceDistance = 8.0

// ReferenceAxes is the fixed orientation indicator drawn in a screen corner.
// It follows the view rotation and is never edited.
type ReferenceAxes struct {
	Axes   [4]Axis
	Offset math.Vec2 // screen position of the origin
}

// NewReferenceAxes returns unit axes anchored at offset.
func NewReferenceAxes(offset math.Vec2) *ReferenceAxes {
	return &ReferenceAxes{Axes: basis(1), Offset: offset}
}

// Project computes the tip of every axis relative to Offset.
func (r *ReferenceAxes) Project(p math.Projector, a math.Angle) {
	p = p.WithDistance(ReferenceDistance)
	center := math.Vec2{X: p.HalfWidth, Y: p.HalfHeight}
	for i := range r.Axes {
		ax := &r.Axes[i]
		ax.Proj, ax.Projected = p.Project(ax.Dir, a)
		if ax.Projected {
			ax.Proj = ax.Proj.Sub(center).Add(r.Offset)
		}
	}
}

// Tips returns the projected tip of each axis and whether it is valid.
func (r *ReferenceAxes) Tips() ([4]math.Vec2, [4]bool) {
	var tips [4]math.Vec2
	var ok [4]bool
	for i, ax := range r.Axes {
		tips[i], ok[i] = ax.Proj, ax.Projected
	}
	return tips, ok
}
