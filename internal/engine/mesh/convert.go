package mesh

import (
	"fmt"

	"github.com/Faultbox/polytope4d/pkg/formats"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// FromP4D builds an unselected mesh from decoded file content.
func FromP4D(p *formats.P4D, name string) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, len(p.Vertices)),
		Edges:    make([]Edge, len(p.Edges)),
		Faces:    make([]Face, len(p.Faces)),
		Cells:    make([]Cell, len(p.Cells)),
	}
	for i, v := range p.Vertices {
		m.Vertices[i] = Vertex{Vec4: v}
	}
	for i, e := range p.Edges {
		m.Edges[i] = Edge{A: int(e[0]), B: int(e[1])}
	}
	for i, f := range p.Faces {
		copyInts(m.Faces[i].Vertices[:], f.Vertices[:])
		copyInts(m.Faces[i].Edges[:], f.Edges[:])
	}
	for i, c := range p.Cells {
		copyInts(m.Cells[i].Vertices[:], c.Vertices[:])
		copyInts(m.Cells[i].Edges[:], c.Edges[:])
		copyInts(m.Cells[i].Faces[:], c.Faces[:])
	}
	return m, nil
}

// ToP4D flattens meshes into one file body, offsetting each mesh's indices
// by the element counts of the meshes before it.
func ToP4D(meshes ...*Mesh) (*formats.P4D, error) {
	p := &formats.P4D{}
	for k, m := range meshes {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("mesh %d: %w", k, err)
		}

		nv, ne, nf := uint64(len(p.Vertices)), uint64(len(p.Edges)), uint64(len(p.Faces))

		for _, v := range m.Vertices {
			p.Vertices = append(p.Vertices, v.Vec4)
		}
		for _, e := range m.Edges {
			p.Edges = append(p.Edges, [2]uint64{uint64(e.A) + nv, uint64(e.B) + nv})
		}
		for _, f := range m.Faces {
			var rec formats.P4DFace
			copyUints(rec.Vertices[:], f.Vertices[:], nv)
			copyUints(rec.Edges[:], f.Edges[:], ne)
			p.Faces = append(p.Faces, rec)
		}
		for _, c := range m.Cells {
			var rec formats.P4DCell
			copyUints(rec.Vertices[:], c.Vertices[:], nv)
			copyUints(rec.Edges[:], c.Edges[:], ne)
			copyUints(rec.Faces[:], c.Faces[:], nf)
			p.Cells = append(p.Cells, rec)
		}
	}
	return p, nil
}

// Points returns the stored coordinates.
func (m *Mesh) Points() []math.Vec4 {
	out := make([]math.Vec4, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Vec4
	}
	return out
}

func copyInts(dst []int, src []uint64) {
	for i, v := range src {
		dst[i] = int(v)
	}
}

func copyUints(dst []uint64, src []int, off uint64) {
	for i, v := range src {
		dst[i] = uint64(v) + off
	}
}
