package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/pkg/formats"
	"github.com/Faultbox/polytope4d/pkg/math"
)

func segment() *mesh.Mesh {
	return mesh.FromPoints("segment",
		[]math.Vec4{{X: 1}, {Y: 2, W: -1}},
		[][2]int{{0, 1}})
}

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(filepath.Join(dir, "cube"), mesh.Tesseract())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cube.4dp"), path)

	m, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "cube", m.Name)
	assert.Len(t, m.Vertices, 16)
	assert.Len(t, m.Edges, 32)
	assert.False(t, m.HasSelection())
}

func TestSaveKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(filepath.Join(dir, "a.4DP"), segment())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.4DP"), path)
}

func TestSaveFlattensMeshes(t *testing.T) {
	path, err := Save(filepath.Join(t.TempDir(), "pair"), segment(), segment())
	require.NoError(t, err)

	m, err := Open(path)
	require.NoError(t, err)
	require.Len(t, m.Edges, 2)
	assert.Equal(t, 2, m.Edges[1].A)
	assert.Equal(t, 3, m.Edges[1].B)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, data, 0644))
		return p
	}

	valid := (&formats.P4D{
		Vertices: []math.Vec4{{}, {X: 1}},
		Edges:    [][2]uint64{{0, 1}},
	}).Marshal()
	selfLoop := (&formats.P4D{
		Vertices: []math.Vec4{{}},
		Edges:    [][2]uint64{{0, 0}},
	}).Marshal()

	tests := []struct {
		name string
		path string
		kind ImportKind
	}{
		{"missing", filepath.Join(dir, "nope.4dp"), FileNotFound},
		{"bad magic", write("magic.4dp", []byte("NOTA4DPFILE-----------------------------")), InvalidExtension},
		{"empty", write("empty.4dp", nil), InvalidExtension},
		{"truncated", write("short.4dp", valid[:len(valid)-3]), FileCorrupted},
		{"trailing", write("long.4dp", append(append([]byte{}, valid...), 0)), FileCorrupted},
		{"self loop", write("loop.4dp", selfLoop), FileCorrupted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path)
			require.Error(t, err)
			assert.True(t, IsImportKind(err, tt.kind), "got %v", err)

			var ie *ImportError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.path, ie.Path)
			assert.Contains(t, err.Error(), tt.kind.String())
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "cube", Name("/tmp/x/cube.4dp"))
	assert.Equal(t, "noext", Name("noext"))
	assert.Equal(t, "a.b", Name("a.b.4dp"))
}

func TestWatcherCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.4dp")
	_, err := Save(path, segment())
	require.NoError(t, err)

	w, err := NewWatcher(time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	// Same bytes: nothing to reload.
	w.check(abs)
	assert.Empty(t, w.Reloads())

	_, err = Save(path, mesh.Tesseract())
	require.NoError(t, err)
	w.check(abs)
	require.Len(t, w.Reloads(), 1)
	r := <-w.Reloads()
	require.NoError(t, r.Err)
	assert.Equal(t, abs, r.Path)
	assert.Len(t, r.Mesh.Vertices, 16)

	// Digest was updated, so a second check is quiet.
	w.check(abs)
	assert.Empty(t, w.Reloads())

	// Corrupt content is reported once.
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
	w.check(abs)
	r = <-w.Reloads()
	assert.True(t, IsImportKind(r.Err, InvalidExtension))
	assert.Nil(t, r.Mesh)
}

func TestWatcherExpect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ack.4dp")
	_, err := Save(path, segment())
	require.NoError(t, err)

	w, err := NewWatcher(time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	abs, _ := filepath.Abs(path)

	data, err := Encode(mesh.Tesseract())
	require.NoError(t, err)
	w.Expect(path, data)
	require.NoError(t, WriteFile(path, data))
	w.check(abs)
	assert.Empty(t, w.Reloads())
}

func TestWatcherUntracked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.4dp")
	_, err := Save(path, segment())
	require.NoError(t, err)

	w, err := NewWatcher(time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	require.NoError(t, w.Remove(path))
	abs, _ := filepath.Abs(path)

	_, err = Save(path, mesh.Tesseract())
	require.NoError(t, err)
	w.check(abs)
	assert.Empty(t, w.Reloads())
	assert.Empty(t, w.dirs)
}

func TestWatcherNotices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.4dp")
	_, err := Save(path, segment())
	require.NoError(t, err)

	w, err := NewWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	w.Start()

	_, err = Save(path, mesh.Tesseract())
	require.NoError(t, err)

	select {
	case r := <-w.Reloads():
		require.NoError(t, r.Err)
		assert.Len(t, r.Mesh.Edges, 32)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
