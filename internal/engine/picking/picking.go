// Package picking resolves screen positions to the nearest projected vertex
// or edge.
package picking

import (
	gomath "math"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// MaxDist is the pick radius in pixels. A hit must be strictly closer.
const MaxDist = 20.0

// ClosestVertex returns the index of the projected vertex nearest to (x, y).
// Vertices without a projection are skipped. On a tie the lowest index wins.
func ClosestVertex(x, y float64, vertices []mesh.Vertex) (int, bool) {
	p := math.Vec2{X: x, Y: y}
	best, bestDist := -1, MaxDist
	for i, v := range vertices {
		pos, ok := v.Projection()
		if !ok {
			continue
		}
		if d := pos.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// EdgeDistance returns the distance from (x, y) to the line through a and b.
// It returns false when the foot of the perpendicular falls outside the
// segment, or when the segment has zero length.
func EdgeDistance(x, y float64, a, b math.Vec2) (float64, bool) {
	p := math.Vec2{X: x, Y: y}
	d1 := a.Distance(b)
	d2 := a.Distance(p)
	d3 := p.Distance(b)

	if d1 == 0 {
		return 0, false
	}
	// Obtuse angle at either endpoint.
	if d2*d2 > d1*d1+d3*d3 || d3*d3 > d1*d1+d2*d2 {
		return 0, false
	}

	// Heron's formula; rounding can push the product slightly negative
	// for collinear points.
	s := (d1 + d2 + d3) / 2
	area := gomath.Sqrt(gomath.Max(0, s*(s-d1)*(s-d2)*(s-d3)))
	return 2 * area / d1, true
}

// ClosestEdge returns the index of the edge of m nearest to (x, y). Only
// edges with both endpoints projected are considered.
func ClosestEdge(x, y float64, m *mesh.Mesh) (int, bool) {
	best, bestDist := -1, MaxDist
	for i, e := range m.Edges {
		a, okA := m.Vertices[e.A].Projection()
		b, okB := m.Vertices[e.B].Projection()
		if !okA || !okB {
			continue
		}
		d, ok := EdgeDistance(x, y, a, b)
		if ok && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
