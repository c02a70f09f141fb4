package mesh

// SelectVertex selects vertex i and every edge whose other endpoint is
// already selected.
func (m *Mesh) SelectVertex(i int) {
	m.Vertices[i].Selected = true
	for j := range m.Edges {
		e := &m.Edges[j]
		switch i {
		case e.A:
			if m.Vertices[e.B].Selected {
				e.Selected = true
			}
		case e.B:
			if m.Vertices[e.A].Selected {
				e.Selected = true
			}
		}
	}
}

// DeselectVertex clears vertex i and every edge incident to it.
func (m *Mesh) DeselectVertex(i int) {
	m.Vertices[i].Selected = false
	for j := range m.Edges {
		if m.Edges[j].Has(i) {
			m.Edges[j].Selected = false
		}
	}
}

// SelectEdge selects edge i together with both endpoints.
func (m *Mesh) SelectEdge(i int) {
	m.Edges[i].Selected = true
	m.SelectVertex(m.Edges[i].A)
	m.SelectVertex(m.Edges[i].B)
}

// DeselectEdge clears edge i together with both endpoints.
func (m *Mesh) DeselectEdge(i int) {
	m.Edges[i].Selected = false
	m.DeselectVertex(m.Edges[i].A)
	m.DeselectVertex(m.Edges[i].B)
}

// ClearSelection clears every selection flag.
func (m *Mesh) ClearSelection() {
	m.setSelected(false)
}

// SelectAll sets every selection flag.
func (m *Mesh) SelectAll() {
	m.setSelected(true)
}

func (m *Mesh) setSelected(sel bool) {
	for i := range m.Vertices {
		m.Vertices[i].Selected = sel
	}
	for i := range m.Edges {
		m.Edges[i].Selected = sel
	}
	for i := range m.Faces {
		m.Faces[i].Selected = sel
	}
	for i := range m.Cells {
		m.Cells[i].Selected = sel
	}
}

// SelectedVertices returns the indices of selected vertices in ascending order.
func (m *Mesh) SelectedVertices() []int {
	var out []int
	for i, v := range m.Vertices {
		if v.Selected {
			out = append(out, i)
		}
	}
	return out
}

// SelectedEdges returns the indices of selected edges in ascending order.
func (m *Mesh) SelectedEdges() []int {
	var out []int
	for i, e := range m.Edges {
		if e.Selected {
			out = append(out, i)
		}
	}
	return out
}

// HasSelection reports whether any vertex is selected.
func (m *Mesh) HasSelection() bool {
	for _, v := range m.Vertices {
		if v.Selected {
			return true
		}
	}
	return false
}
