package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/engine/input"
	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/engine/picking"
	"github.com/Faultbox/polytope4d/internal/logger"
)

// Click selects the vertex or edge under (x, y), trying each object in
// order and vertices before edges. The first hit wins. Without additive
// every mesh is cleared first and the hit becomes the only selection; with
// additive the hit is toggled. A click on empty space changes nothing.
func (e *Editor) Click(x, y float64, additive bool) bool {
	defer e.recenter()

	for k, o := range e.Objects {
		m := o.Mesh
		if e.Modes.Vertex {
			if i, ok := picking.ClosestVertex(x, y, m.Vertices); ok {
				e.Active = k
				switch {
				case !additive:
					e.clearAll()
					m.SelectVertex(i)
				case m.Vertices[i].Selected:
					m.DeselectVertex(i)
				default:
					m.SelectVertex(i)
				}
				return true
			}
		}
		if e.Modes.Edge {
			if i, ok := picking.ClosestEdge(x, y, m); ok {
				e.Active = k
				switch {
				case !additive:
					e.clearAll()
					m.SelectEdge(i)
				case m.Edges[i].Selected:
					m.DeselectEdge(i)
				default:
					m.SelectEdge(i)
				}
				return true
			}
		}
	}
	return false
}

func (e *Editor) clearAll() {
	for _, m := range e.Meshes() {
		m.ClearSelection()
	}
}

// Run executes a discrete command. Actions handled by the host (open, save,
// screenshot, quit) are ignored. It reports whether the session changed.
func (e *Editor) Run(action input.Action, shift bool) bool {
	changed := true
	switch action {
	case input.ActionExtrude:
		changed = e.Extrude() > 0
	case input.ActionDelete:
		changed = e.Delete() > 0
	case input.ActionFill:
		changed = e.Fill() > 0
	case input.ActionCopy:
		changed = e.Copy()
	case input.ActionPaste:
		changed = e.Paste()
	case input.ActionFreeze:
		// Applied by the next Update so the frame does not also rotate.
		e.pendingFreeze = true
	case input.ActionSelectAll:
		for _, m := range e.Meshes() {
			m.SelectAll()
		}
	case input.ActionNewTesseract:
		e.AddObject(mesh.Tesseract(), "")
	case input.ActionVertexMode:
		e.Modes.Toggle(VertexMode, shift)
	case input.ActionEdgeMode:
		e.Modes.Toggle(EdgeMode, shift)
	default:
		return false
	}

	logger.Debug("command", zap.String("action", string(action)), zap.Bool("changed", changed))
	e.recenter()
	return changed
}

// Extrude extrudes the selection of every mesh and returns the total
// number of vertices extruded.
func (e *Editor) Extrude() int {
	n := 0
	for _, m := range e.Meshes() {
		n += m.Extrude()
	}
	return n
}

// Delete removes every selected vertex and returns how many were removed.
func (e *Editor) Delete() int {
	n := 0
	for _, m := range e.Meshes() {
		n += m.DeleteSelected()
	}
	return n
}

// Fill joins the two selected vertices of each mesh that has exactly two.
// It returns the number of edges added.
func (e *Editor) Fill() int {
	n := 0
	for _, m := range e.Meshes() {
		if m.Fill() {
			n++
		}
	}
	return n
}

// Copy puts the selection of every mesh into the clipboard as one mesh.
// With nothing selected the clipboard keeps its previous content.
func (e *Editor) Copy() bool {
	clip := mesh.New("")
	for _, m := range e.Meshes() {
		clip.Paste(m.Copy())
	}
	if len(clip.Vertices) == 0 {
		return false
	}
	clip.ClearSelection()
	e.Clipboard = clip
	return true
}

// Paste appends the clipboard to the active mesh and selects the pasted
// elements only. With no objects open the clipboard becomes a new object.
func (e *Editor) Paste() bool {
	if e.Clipboard == nil || len(e.Clipboard.Vertices) == 0 {
		return false
	}
	e.clearAll()
	if len(e.Objects) == 0 {
		m := mesh.New("")
		m.Paste(e.Clipboard)
		e.AddObject(m, "")
		return true
	}
	e.Objects[e.Active].Mesh.Paste(e.Clipboard)
	return true
}
