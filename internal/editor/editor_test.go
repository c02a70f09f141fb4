package editor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/polytope4d/internal/engine/camera"
	"github.com/Faultbox/polytope4d/internal/engine/gizmo"
	"github.com/Faultbox/polytope4d/internal/engine/input"
	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/pkg/math"
)

// square is a 4-cycle in the XY plane. On an 800x600 viewport at d = 5 and
// zero rotation its corners land at x in {340, 460} and y in {240, 360}.
func square() *mesh.Mesh {
	return mesh.FromPoints("square", []math.Vec4{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func newEditor(t *testing.T, meshes ...*mesh.Mesh) *Editor {
	t.Helper()
	e := New(camera.NewView(), 800, 600)
	for _, m := range meshes {
		e.AddObject(m, "")
	}
	e.Update(input.Frame{})
	return e
}

func click(x, y float64, shift bool) input.Frame {
	return input.Frame{
		MouseX: x, MouseY: y,
		Left:  input.ButtonState{Released: true, Clicked: true},
		Shift: shift,
	}
}

func action(a input.Action) input.Frame {
	return input.Frame{Actions: []input.Action{a}}
}

func TestNew(t *testing.T) {
	e := New(camera.NewView(), 1024, 768)
	assert.Empty(t, e.Objects)
	assert.True(t, e.Modes.Vertex)
	assert.False(t, e.Modes.Edge)
	assert.Equal(t, math.Vec2{X: 100, Y: 668}, e.Axes.Offset)
	assert.Nil(t, e.Gizmo.Pos)
}

func TestClickSelectsVertex(t *testing.T) {
	m := square()
	e := newEditor(t, m)

	e.Update(click(462, 358, false))
	assert.Equal(t, []int{2}, m.SelectedVertices())
	require.NotNil(t, e.Gizmo.Pos)
	assert.Equal(t, m.Vertices[2].Vec4, *e.Gizmo.Pos)

	// A plain click elsewhere replaces the selection.
	e.Update(click(340, 240, false))
	assert.Equal(t, []int{0}, m.SelectedVertices())
}

func TestClickAdditiveToggles(t *testing.T) {
	m := square()
	e := newEditor(t, m)

	e.Update(click(460, 360, false))
	e.Update(click(460, 240, true))
	assert.Equal(t, []int{1, 2}, m.SelectedVertices())
	assert.Equal(t, []int{1}, m.SelectedEdges(), "edge between two selected vertices")

	c, ok := mesh.Centroid(m)
	require.True(t, ok)
	assert.Equal(t, c, *e.Gizmo.Pos)

	e.Update(click(460, 360, true))
	assert.Equal(t, []int{1}, m.SelectedVertices())
	assert.Empty(t, m.SelectedEdges())
}

func TestClickEmptyKeepsSelection(t *testing.T) {
	m := square()
	e := newEditor(t, m)

	e.Update(click(460, 360, false))
	e.Update(click(700, 50, false))
	assert.Equal(t, []int{2}, m.SelectedVertices())
}

func TestClickClearsOtherMeshes(t *testing.T) {
	a := square()
	b := mesh.FromPoints("far", []math.Vec4{{X: -1.5, Y: 1.5}}, nil)
	e := newEditor(t, a, b)

	b.SelectAll()
	e.Update(click(460, 360, false))

	assert.Equal(t, []int{2}, a.SelectedVertices())
	assert.Empty(t, b.SelectedVertices())
	assert.Equal(t, 0, e.Active)
}

func TestClickEdgeMode(t *testing.T) {
	m := mesh.FromPoints("", []math.Vec4{{X: -0.5}, {X: 0.5}}, [][2]int{{0, 1}})
	e := newEditor(t, m)
	e.Update(action(input.ActionEdgeMode))
	require.True(t, e.Modes.Edge)
	require.False(t, e.Modes.Vertex)

	// Midpoint is 60px from both vertices but on the edge.
	e.Update(click(400, 303, false))
	assert.Equal(t, []int{0}, m.SelectedEdges())
	assert.Equal(t, []int{0, 1}, m.SelectedVertices())

	e.Update(click(400, 297, true))
	assert.Empty(t, m.SelectedEdges())
	assert.Empty(t, m.SelectedVertices())
}

func TestFreeRotation(t *testing.T) {
	e := newEditor(t, square())

	e.Update(input.Frame{DeltaX: 20, DeltaY: 10, Left: input.ButtonState{Down: true}})
	assert.InDelta(t, 0.1, e.Camera.Angle.XW, 1e-12)
	assert.InDelta(t, 0.05, e.Camera.Angle.YW, 1e-12)

	e.Update(input.Frame{DeltaX: -20, Right: input.ButtonState{Down: true}, Shift: true})
	assert.InDelta(t, -0.1, e.Camera.Angle.XZ, 1e-12)

	e.Update(input.Frame{Scroll: 3})
	assert.InDelta(t, 0.03, e.Camera.Angle.ZW, 1e-12)
}

func TestCommitOnRelease(t *testing.T) {
	m := square()
	e := newEditor(t, m)
	e.Camera.CommitOnRelease = true
	before := m.Vertices[2].Vec4

	e.Update(input.Frame{DeltaX: 40, Left: input.ButtonState{Down: true}})
	require.False(t, e.Camera.Angle.IsZero())

	e.Update(input.Frame{Left: input.ButtonState{Released: true}, Scroll: 5})
	assert.True(t, e.Camera.Angle.IsZero(), "commit frame does not accumulate")
	assert.NotEqual(t, before, m.Vertices[2].Vec4)

	e.Update(input.Frame{})
	assert.InDelta(t, 0.05, e.Camera.Angle.ZW, 1e-12, "scroll applied on the next frame")
}

func TestFreezeFrameDoesNotRotate(t *testing.T) {
	m := square()
	e := newEditor(t, m)
	before := m.Vertices[0].Vec4

	e.Update(input.Frame{
		DeltaX:  50,
		Scroll:  10,
		Left:    input.ButtonState{Down: true},
		Actions: []input.Action{input.ActionFreeze},
	})
	assert.True(t, e.Camera.Angle.IsZero())
	assert.Equal(t, before, m.Vertices[0].Vec4, "nothing accumulated, nothing to commit")

	e.Update(input.Frame{})
	assert.InDelta(t, 0.1, e.Camera.Angle.ZW, 1e-12, "scroll applied on the next frame")
	assert.Equal(t, before, m.Vertices[0].Vec4)
}

func TestReleaseCommitSkipsDrag(t *testing.T) {
	m := square()
	e := newEditor(t, m)
	e.Camera.CommitOnRelease = true

	e.Update(input.Frame{DeltaX: 40, Right: input.ButtonState{Down: true}})
	require.InDelta(t, 0.2, e.Camera.Angle.XW, 1e-12)
	rotated := math.Angle{XW: 0.2}.Rotate(math.Vec4{X: -0.5, Y: -0.5})

	e.Update(input.Frame{
		DeltaX: 40,
		Left:   input.ButtonState{Down: true},
		Right:  input.ButtonState{Released: true},
	})
	assert.True(t, e.Camera.Angle.IsZero())
	assert.InDelta(t, rotated.X, m.Vertices[0].X, 1e-12, "only the earlier drag is committed")
	assert.InDelta(t, rotated.W, m.Vertices[0].W, 1e-12)

	e.Update(input.Frame{DeltaX: 40, Left: input.ButtonState{Down: true}})
	assert.InDelta(t, 0.2, e.Camera.Angle.XW, 1e-12)
}

func TestRunFreezeWaitsForUpdate(t *testing.T) {
	m := square()
	e := newEditor(t, m)
	e.Camera.Angle.XY = 0.5
	before := m.Vertices[0].Vec4

	assert.True(t, e.Run(input.ActionFreeze, false))
	assert.Equal(t, before, m.Vertices[0].Vec4)

	e.Update(input.Frame{DeltaX: 20, Left: input.ButtonState{Down: true}})
	assert.True(t, e.Camera.Angle.IsZero())
	want := math.Angle{XY: 0.5}.Rotate(before)
	assert.InDelta(t, want.X, m.Vertices[0].X, 1e-12)
	assert.InDelta(t, want.Y, m.Vertices[0].Y, 1e-12)

	e.Update(input.Frame{})
	assert.True(t, e.Camera.Angle.IsZero(), "freeze is consumed once")
}

func TestGizmoDrag(t *testing.T) {
	m := square()
	e := newEditor(t, m)

	e.Update(click(460, 360, false))
	require.Equal(t, gizmo.Idle, e.Gizmo.State())

	// The X handle runs from (460, 360) to (520, 360).
	e.Update(input.Frame{MouseX: 490, MouseY: 362, DeltaX: 30, DeltaY: 2})
	require.Equal(t, gizmo.Hovered, e.Gizmo.State())

	e.Update(input.Frame{MouseX: 490, MouseY: 362, Right: input.ButtonState{Down: true, Pressed: true}})
	require.True(t, e.Gizmo.Grabbed)

	e.Update(input.Frame{MouseX: 520, MouseY: 362, DeltaX: 30, Right: input.ButtonState{Down: true}})
	assert.InDelta(t, 0.75, m.Vertices[2].X, 1e-9)
	assert.InDelta(t, 0.5, m.Vertices[2].Y, 1e-9)
	assert.Equal(t, math.Vec4{X: 0.5, Y: -0.5}, m.Vertices[1].Vec4, "unselected vertices stay")
	assert.True(t, e.Camera.Angle.IsZero(), "a grabbed drag does not rotate")

	v := e.View()
	assert.True(t, v.Gizmo.Grabbed)
	assert.True(t, v.Gizmo.TrailOK)
	assert.Equal(t, 0, v.Gizmo.Selected)

	e.Update(input.Frame{MouseX: 520, MouseY: 362, Right: input.ButtonState{Released: true}})
	assert.False(t, e.Gizmo.Grabbed)
	require.NotNil(t, e.Gizmo.Pos)
	assert.InDelta(t, 0.75, e.Gizmo.Pos.X, 1e-9)
}

func TestCommands(t *testing.T) {
	t.Run("extrude", func(t *testing.T) {
		m := square()
		e := newEditor(t, m)
		e.Update(click(460, 360, false))
		e.Update(click(460, 240, true))

		e.Update(action(input.ActionExtrude))
		assert.Len(t, m.Vertices, 6)
		assert.Len(t, m.Edges, 4+1+2)
		assert.Equal(t, []int{4, 5}, m.SelectedVertices())
	})

	t.Run("delete", func(t *testing.T) {
		m := square()
		e := newEditor(t, m)
		e.Update(click(460, 360, false))

		e.Update(action(input.ActionDelete))
		assert.Len(t, m.Vertices, 3)
		assert.Len(t, m.Edges, 2)
		assert.Nil(t, e.Gizmo.Pos, "nothing left selected")
	})

	t.Run("fill", func(t *testing.T) {
		m := square()
		e := newEditor(t, m)
		e.Update(click(460, 360, false))
		e.Update(click(340, 240, true))

		e.Update(action(input.ActionFill))
		require.Len(t, m.Edges, 5)
		assert.Equal(t, mesh.Edge{A: 0, B: 2, Selected: true}, m.Edges[4])
	})

	t.Run("copy and paste", func(t *testing.T) {
		m := square()
		e := newEditor(t, m)
		e.Update(click(460, 360, false))
		e.Update(click(460, 240, true))

		e.Update(action(input.ActionCopy))
		require.NotNil(t, e.Clipboard)
		assert.Len(t, e.Clipboard.Vertices, 2)
		assert.Len(t, e.Clipboard.Edges, 1)

		e.Update(action(input.ActionPaste))
		assert.Len(t, m.Vertices, 6)
		assert.Len(t, m.Edges, 5)
		assert.Equal(t, []int{4, 5}, m.SelectedVertices())

		e.Update(action(input.ActionPaste))
		assert.Len(t, m.Vertices, 8, "clipboard is reusable")
	})

	t.Run("copy with empty selection keeps clipboard", func(t *testing.T) {
		e := newEditor(t, square())
		e.Clipboard = square()
		e.Update(action(input.ActionCopy))
		assert.Len(t, e.Clipboard.Vertices, 4)
	})

	t.Run("paste into empty session", func(t *testing.T) {
		e := newEditor(t)
		e.Clipboard = square()
		e.Update(action(input.ActionPaste))
		require.Len(t, e.Objects, 1)
		assert.Len(t, e.Objects[0].Mesh.SelectedVertices(), 4)
		assert.NotNil(t, e.Gizmo.Pos)
	})

	t.Run("select all and freeze", func(t *testing.T) {
		m := square()
		e := newEditor(t, m)
		e.Update(action(input.ActionSelectAll))
		assert.Len(t, m.SelectedVertices(), 4)

		e.Camera.Angle.XY = 0.5
		e.Update(action(input.ActionFreeze))
		assert.True(t, e.Camera.Angle.IsZero())
		assert.NotEqual(t, math.Vec4{X: -0.5, Y: -0.5}, m.Vertices[0].Vec4)
	})

	t.Run("new tesseract", func(t *testing.T) {
		e := newEditor(t)
		e.Update(action(input.ActionNewTesseract))
		require.Len(t, e.Objects, 1)
		assert.Len(t, e.Objects[0].Mesh.Vertices, 16)
		assert.NotEqual(t, uuid.Nil, e.Objects[0].ID)
	})

	t.Run("host actions are ignored", func(t *testing.T) {
		e := newEditor(t, square())
		assert.False(t, e.Run(input.ActionSave, false))
		assert.False(t, e.Run(input.ActionQuit, false))
	})
}

func TestView(t *testing.T) {
	m := square()
	m.Vertices = append(m.Vertices, mesh.Vertex{Vec4: math.Vec4{W: 5}})
	m.Edges = append(m.Edges, mesh.Edge{A: 0, B: 4})
	e := newEditor(t, m)
	e.Update(click(460, 360, false))

	v := e.View()
	require.Len(t, v.Meshes, 1)
	assert.Len(t, v.Meshes[0].Points, 4, "degenerate vertex is left out")
	assert.Len(t, v.Meshes[0].Segments, 4, "edge to degenerate vertex is left out")
	assert.True(t, v.ShowVertices)

	assert.True(t, v.Gizmo.Visible)
	assert.InDelta(t, 460, v.Gizmo.Center.X, 1e-9)
	assert.Equal(t, -1, v.Gizmo.Selected)
	assert.Equal(t, math.Vec2{X: 100, Y: 500}, v.Axes.Origin)
	assert.True(t, v.Axes.TipOK[0])
}

func TestObjects(t *testing.T) {
	e := newEditor(t, square(), square())
	id := e.Objects[0].ID

	o, ok := e.Object(id)
	require.True(t, ok)
	assert.Same(t, e.Objects[0], o)

	tess := mesh.Tesseract()
	require.NoError(t, e.ReplaceObject(id, tess))
	assert.Same(t, tess, e.Objects[0].Mesh)

	require.NoError(t, e.RemoveObject(id))
	assert.Len(t, e.Objects, 1)
	assert.Equal(t, 0, e.Active)

	assert.ErrorIs(t, e.RemoveObject(id), ErrNoObject)
	assert.ErrorIs(t, e.ReplaceObject(id, tess), ErrNoObject)

	e.Objects[0].Path = "/tmp/a.4dp"
	_, ok = e.ObjectByPath("/tmp/a.4dp")
	assert.True(t, ok)
}

func TestResize(t *testing.T) {
	e := newEditor(t, square())
	e.Update(input.Frame{Resized: true, Width: 1000, Height: 400})
	assert.Equal(t, 1000, e.Width)
	assert.Equal(t, math.Vec2{X: 100, Y: 300}, e.Axes.Offset)
	assert.Equal(t, 500.0, e.Projector().HalfWidth)
}

func TestSelectionModesToggle(t *testing.T) {
	tests := []struct {
		name     string
		start    SelectionModes
		mode     Mode
		additive bool
		want     SelectionModes
	}{
		{"exclusive switch", SelectionModes{Vertex: true}, EdgeMode, false, SelectionModes{Edge: true}},
		{"additive enable", SelectionModes{Vertex: true}, EdgeMode, true, SelectionModes{Vertex: true, Edge: true}},
		{"additive disable", SelectionModes{Vertex: true, Edge: true}, VertexMode, true, SelectionModes{Edge: true}},
		{"last mode stays on", SelectionModes{Edge: true}, EdgeMode, true, SelectionModes{Edge: true}},
		{"exclusive from both", SelectionModes{Vertex: true, Edge: true}, VertexMode, false, SelectionModes{Vertex: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Toggle(tt.mode, tt.additive)
			assert.Equal(t, tt.want, s)
		})
	}
}
