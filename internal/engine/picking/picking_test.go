package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/pkg/math"
)

func projected(points ...math.Vec2) []mesh.Vertex {
	out := make([]mesh.Vertex, len(points))
	for i, p := range points {
		out[i] = mesh.Vertex{Proj: p, Projected: true}
	}
	return out
}

func TestClosestVertex(t *testing.T) {
	vertices := projected(
		math.Vec2{X: 100, Y: 100},
		math.Vec2{X: 110, Y: 100},
		math.Vec2{X: 300, Y: 300},
	)

	tests := []struct {
		name   string
		x, y   float64
		want   int
		wantOK bool
	}{
		{"exact hit", 300, 300, 2, true},
		{"nearest of two", 108, 100, 1, true},
		{"tie goes to first", 105, 100, 0, true},
		{"just inside radius", 300 + MaxDist - 1e-6, 300, 2, true},
		{"on the radius", 300 + MaxDist, 300, -1, false},
		{"far away", 0, 600, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClosestVertex(tt.x, tt.y, vertices)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClosestVertexSkipsUnprojected(t *testing.T) {
	vertices := projected(math.Vec2{X: 10, Y: 10}, math.Vec2{X: 12, Y: 10})
	vertices[0].Projected = false

	got, ok := ClosestVertex(10, 10, vertices)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	vertices[1].Projected = false
	_, ok = ClosestVertex(10, 10, vertices)
	assert.False(t, ok)
}

func TestEdgeDistance(t *testing.T) {
	a := math.Vec2{X: 0, Y: 0}
	b := math.Vec2{X: 1, Y: 0}

	t.Run("perpendicular", func(t *testing.T) {
		d, ok := EdgeDistance(0.5, 0.25, a, b)
		require.True(t, ok)
		assert.InDelta(t, 0.25, d, 1e-9)
	})

	t.Run("collinear beyond end", func(t *testing.T) {
		_, ok := EdgeDistance(2, 0, a, b)
		assert.False(t, ok)
		_, ok = EdgeDistance(-1, 0, a, b)
		assert.False(t, ok)
	})

	t.Run("on the segment", func(t *testing.T) {
		d, ok := EdgeDistance(0.3, 0, a, b)
		require.True(t, ok)
		assert.InDelta(t, 0, d, 1e-6)
	})

	t.Run("zero length", func(t *testing.T) {
		_, ok := EdgeDistance(0, 0, a, a)
		assert.False(t, ok)
	})
}

func TestClosestEdge(t *testing.T) {
	m := mesh.FromPoints("", make([]math.Vec4, 4), [][2]int{{0, 1}, {1, 2}, {2, 3}})
	copy(m.Vertices, projected(
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 100, Y: 0},
		math.Vec2{X: 100, Y: 100},
		math.Vec2{X: 0, Y: 100},
	))

	got, ok := ClosestEdge(50, 5, m)
	require.True(t, ok)
	assert.Equal(t, 0, got)

	got, ok = ClosestEdge(95, 60, m)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = ClosestEdge(50, 50, m)
	assert.False(t, ok, "beyond pick radius of every edge")

	_, ok = ClosestEdge(150, 0, m)
	assert.False(t, ok, "collinear with edge 0 but past its end")

	m.Vertices[1].Projected = false
	got, ok = ClosestEdge(50, 95, m)
	require.True(t, ok)
	assert.Equal(t, 2, got)
	_, ok = ClosestEdge(50, 5, m)
	assert.False(t, ok)
}
