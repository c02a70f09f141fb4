// Package mesh provides the indexed 4D mesh model and its editing operations.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/polytope4d/pkg/math"
)

// ErrInvalidIndex is returned by Validate when a record points outside the mesh.
var ErrInvalidIndex = errors.New("mesh index out of range")

// Vertex is a 4D point with its selection flag and the projection computed
// for the current frame.
type Vertex struct {
	math.Vec4
	Selected bool

	Proj      math.Vec2
	Projected bool
}

// Projection returns the screen position computed by the last Project call.
func (v Vertex) Projection() (math.Vec2, bool) {
	return v.Proj, v.Projected
}

// Edge connects two vertices by index.
type Edge struct {
	A, B     int
	Selected bool
}

// Has reports whether the edge is incident to vertex i.
func (e Edge) Has(i int) bool {
	return e.A == i || e.B == i
}

// Face is a triangle. Faces are carried through editing but never created by it.
type Face struct {
	Vertices [3]int
	Edges    [3]int
	Selected bool
}

// Cell is a tetrahedron. Like faces, cells are only carried along.
type Cell struct {
	Vertices [4]int
	Edges    [6]int
	Faces    [4]int
	Selected bool
}

// Mesh is an editable 4D object. Edges, faces and cells reference vertices
// by position in Vertices.
type Mesh struct {
	Name     string // empty when unnamed
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
	Cells    []Cell
}

// New creates an empty mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// FromPoints creates an unselected mesh from coordinates and index pairs.
func FromPoints(name string, points []math.Vec4, edges [][2]int) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, len(points)),
		Edges:    make([]Edge, len(edges)),
	}
	for i, p := range points {
		m.Vertices[i] = Vertex{Vec4: p}
	}
	for i, e := range edges {
		m.Edges[i] = Edge{A: e[0], B: e[1]}
	}
	return m
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Name:     m.Name,
		Vertices: append([]Vertex(nil), m.Vertices...),
		Edges:    append([]Edge(nil), m.Edges...),
		Faces:    append([]Face(nil), m.Faces...),
		Cells:    append([]Cell(nil), m.Cells...),
	}
}

// Validate checks that every index refers to an existing element and that
// no edge is a self loop.
func (m *Mesh) Validate() error {
	nv, ne, nf := len(m.Vertices), len(m.Edges), len(m.Faces)

	for i, e := range m.Edges {
		if !inRange(nv, e.A, e.B) || e.A == e.B {
			return fmt.Errorf("%w: edge %d (%d, %d)", ErrInvalidIndex, i, e.A, e.B)
		}
	}
	for i, f := range m.Faces {
		if !inRange(nv, f.Vertices[:]...) || !inRange(ne, f.Edges[:]...) {
			return fmt.Errorf("%w: face %d", ErrInvalidIndex, i)
		}
	}
	for i, c := range m.Cells {
		if !inRange(nv, c.Vertices[:]...) || !inRange(ne, c.Edges[:]...) || !inRange(nf, c.Faces[:]...) {
			return fmt.Errorf("%w: cell %d", ErrInvalidIndex, i)
		}
	}
	return nil
}

func inRange(n int, indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}

// Translate moves every selected vertex by delta.
func (m *Mesh) Translate(delta math.Vec4) {
	for i := range m.Vertices {
		if m.Vertices[i].Selected {
			m.Vertices[i].Vec4 = m.Vertices[i].Add(delta)
		}
	}
}

// Freeze rotates the stored coordinates by a. The caller resets a afterwards.
func (m *Mesh) Freeze(a math.Angle) {
	if a.IsZero() {
		return
	}
	r := math.Rotation(a)
	for i := range m.Vertices {
		m.Vertices[i].Vec4 = r.MulVec4(m.Vertices[i].Vec4)
	}
}

// Project recomputes the screen position of every vertex.
func (m *Mesh) Project(p math.Projector, a math.Angle) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Proj, v.Projected = p.Project(v.Vec4, a)
	}
}

// Centroid returns the mean position of the selected vertices across meshes.
// It returns false when nothing is selected.
func Centroid(meshes ...*Mesh) (math.Vec4, bool) {
	var sum math.Vec4
	n := 0
	for _, m := range meshes {
		for _, v := range m.Vertices {
			if v.Selected {
				sum = sum.Add(v.Vec4)
				n++
			}
		}
	}
	if n == 0 {
		return math.Vec4{}, false
	}
	return sum.Div(float64(n)), true
}
