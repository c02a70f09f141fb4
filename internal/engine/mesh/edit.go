package mesh

import "slices"

// DeleteVertex removes vertex i if it is selected. Incident edges are dropped,
// higher indices shift down by one, and faces or cells that lose a vertex or
// edge are dropped too. It reports whether anything was removed.
func (m *Mesh) DeleteVertex(i int) bool {
	if i < 0 || i >= len(m.Vertices) || !m.Vertices[i].Selected {
		return false
	}
	m.Vertices = slices.Delete(m.Vertices, i, i+1)

	shift := func(v int) int {
		switch {
		case v == i:
			return -1
		case v > i:
			return v - 1
		}
		return v
	}

	edgeMap := make([]int, len(m.Edges))
	edges := m.Edges[:0]
	for j, e := range m.Edges {
		if e.Has(i) {
			edgeMap[j] = -1
			continue
		}
		e.A, e.B = shift(e.A), shift(e.B)
		edgeMap[j] = len(edges)
		edges = append(edges, e)
	}
	m.Edges = edges

	m.remapPassengers(shift, func(e int) int { return edgeMap[e] })
	return true
}

// DeleteSelected removes every selected vertex, highest index first, and
// returns how many were removed.
func (m *Mesh) DeleteSelected() int {
	sel := m.SelectedVertices()
	n := 0
	for k := len(sel) - 1; k >= 0; k-- {
		if m.DeleteVertex(sel[k]) {
			n++
		}
	}
	return n
}

// remapPassengers rewrites face and cell indices. A mapping result of -1
// drops the record.
func (m *Mesh) remapPassengers(vertex, edge func(int) int) {
	faceMap := make([]int, len(m.Faces))
	faces := m.Faces[:0]
	for j, f := range m.Faces {
		if !remap(f.Vertices[:], vertex) || !remap(f.Edges[:], edge) {
			faceMap[j] = -1
			continue
		}
		faceMap[j] = len(faces)
		faces = append(faces, f)
	}
	m.Faces = faces

	face := func(f int) int { return faceMap[f] }
	cells := m.Cells[:0]
	for _, c := range m.Cells {
		if !remap(c.Vertices[:], vertex) || !remap(c.Edges[:], edge) || !remap(c.Faces[:], face) {
			continue
		}
		cells = append(cells, c)
	}
	m.Cells = cells
}

// remap applies fn to every index in place. It stops and returns false at the
// first index mapped to -1.
func remap(indices []int, fn func(int) int) bool {
	for k, i := range indices {
		j := fn(i)
		if j < 0 {
			return false
		}
		indices[k] = j
	}
	return true
}

// Copy returns the selected subgraph as a new unselected mesh. Vertices keep
// their relative order; an edge is copied when both endpoints are, and faces
// and cells are copied when everything they reference is.
func (m *Mesh) Copy() *Mesh {
	out := New("")

	vertexMap := make([]int, len(m.Vertices))
	for i, v := range m.Vertices {
		if !v.Selected {
			vertexMap[i] = -1
			continue
		}
		vertexMap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, Vertex{Vec4: v.Vec4})
	}

	edgeMap := make([]int, len(m.Edges))
	for i, e := range m.Edges {
		a, b := vertexMap[e.A], vertexMap[e.B]
		if a < 0 || b < 0 {
			edgeMap[i] = -1
			continue
		}
		edgeMap[i] = len(out.Edges)
		out.Edges = append(out.Edges, Edge{A: a, B: b})
	}

	vertex := func(v int) int { return vertexMap[v] }
	edge := func(e int) int { return edgeMap[e] }

	faceMap := make([]int, len(m.Faces))
	for i, f := range m.Faces {
		f.Selected = false
		if !remap(f.Vertices[:], vertex) || !remap(f.Edges[:], edge) {
			faceMap[i] = -1
			continue
		}
		faceMap[i] = len(out.Faces)
		out.Faces = append(out.Faces, f)
	}

	face := func(f int) int { return faceMap[f] }
	for _, c := range m.Cells {
		c.Selected = false
		if !remap(c.Vertices[:], vertex) || !remap(c.Edges[:], edge) || !remap(c.Faces[:], face) {
			continue
		}
		out.Cells = append(out.Cells, c)
	}

	return out
}

// Paste appends src to m. Appended elements are selected and everything that
// was already in m is deselected. src is not modified.
func (m *Mesh) Paste(src *Mesh) {
	m.ClearSelection()

	nv, ne, nf := len(m.Vertices), len(m.Edges), len(m.Faces)

	for _, v := range src.Vertices {
		m.Vertices = append(m.Vertices, Vertex{Vec4: v.Vec4, Selected: true})
	}
	for _, e := range src.Edges {
		m.Edges = append(m.Edges, Edge{A: e.A + nv, B: e.B + nv, Selected: true})
	}
	for _, f := range src.Faces {
		offset(f.Vertices[:], nv)
		offset(f.Edges[:], ne)
		f.Selected = true
		m.Faces = append(m.Faces, f)
	}
	for _, c := range src.Cells {
		offset(c.Vertices[:], nv)
		offset(c.Edges[:], ne)
		offset(c.Faces[:], nf)
		c.Selected = true
		m.Cells = append(m.Cells, c)
	}
}

func offset(indices []int, n int) {
	for k := range indices {
		indices[k] += n
	}
}

// Extrude duplicates the selection and joins each selected vertex to its
// duplicate with a new edge. Afterwards only the duplicates are selected.
// It returns the number of vertices extruded.
func (m *Mesh) Extrude() int {
	sel := m.SelectedVertices()
	if len(sel) == 0 {
		return 0
	}

	base := len(m.Vertices)
	m.Paste(m.Copy())

	for k, i := range sel {
		m.Edges = append(m.Edges, Edge{A: i, B: base + k})
	}
	return len(sel)
}

// Fill joins the two selected vertices with a new selected edge. It does
// nothing unless exactly two vertices are selected.
func (m *Mesh) Fill() bool {
	sel := m.SelectedVertices()
	if len(sel) != 2 {
		return false
	}
	m.Edges = append(m.Edges, Edge{A: sel[0], B: sel[1], Selected: true})
	return true
}
