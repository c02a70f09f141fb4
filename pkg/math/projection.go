package math

import "math"

// DefaultScale is the screen scale applied after the 3D->2D divide.
const DefaultScale = 3000.0

// Epsilon is the smallest denominator magnitude accepted by a perspective divide.
const Epsilon = 1e-9

// Projector maps 4D points to screen coordinates with two perspective divides.
type Projector struct {
	Distance   float64 // camera distance d along W (and then Z)
	HalfWidth  float64 // viewport centre X
	HalfHeight float64 // viewport centre Y
	Scale      float64 // K
}

// NewProjector returns a projector for a viewport of the given size.
func NewProjector(distance, width, height float64) Projector {
	return Projector{
		Distance:   distance,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Scale:      DefaultScale,
	}
}

// WithDistance returns a copy of p using another camera distance.
func (p Projector) WithDistance(d float64) Projector {
	p.Distance = d
	return p
}

// Project rotates v by a and projects it to the screen.
// It returns false when either divide is degenerate; v has no projection for
// this frame and should be skipped by hit-testing and drawing.
func (p Projector) Project(v Vec4, a Angle) (Vec2, bool) {
	r := a.Rotate(v)

	den := p.Distance - r.W
	if math.Abs(den) < Epsilon {
		return Vec2{}, false
	}
	p3 := r.XYZ().Scale(1 / den)

	den = p.Distance - r.W - p3.Z
	if math.Abs(den) < Epsilon {
		return Vec2{}, false
	}
	q := p.Scale / den

	out := Vec2{p3.X*q + p.HalfWidth, p3.Y*q + p.HalfHeight}
	if !finite(out.X) || !finite(out.Y) {
		return Vec2{}, false
	}
	return out, true
}

// Project3D returns the intermediate 3D point of the first divide.
func (p Projector) Project3D(v Vec4, a Angle) (Vec3, bool) {
	r := a.Rotate(v)
	den := p.Distance - r.W
	if math.Abs(den) < Epsilon {
		return Vec3{}, false
	}
	return r.XYZ().Scale(1 / den), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
