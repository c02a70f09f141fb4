package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeymap(t *testing.T) Keymap {
	t.Helper()
	km, err := NewKeymap(map[Action]string{
		ActionExtrude: "E",
		ActionCopy:    "Ctrl+C",
		ActionFill:    "F",
		ActionSave:    "Ctrl+Shift+S",
	})
	require.NoError(t, err)
	return km
}

func TestTrackerDeltas(t *testing.T) {
	tr := NewTracker(nil)

	f := tr.Next(Raw{MouseX: 100, MouseY: 50}, 0)
	assert.False(t, f.Moved(), "first frame has no delta")

	f = tr.Next(Raw{MouseX: 110, MouseY: 45}, 16*time.Millisecond)
	assert.Equal(t, 10.0, f.DeltaX)
	assert.Equal(t, -5.0, f.DeltaY)
	assert.True(t, f.Moved())
}

func TestTrackerClick(t *testing.T) {
	tests := []struct {
		name    string
		held    time.Duration
		clicked bool
	}{
		{"quick release", 120 * time.Millisecond, true},
		{"just under timeout", ClickTimeout - time.Millisecond, true},
		{"at timeout", ClickTimeout, false},
		{"long press", time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(nil)
			start := 5 * time.Second

			tr.Next(Raw{}, start-time.Millisecond)
			f := tr.Next(Raw{Left: true}, start)
			assert.True(t, f.Left.Pressed)
			assert.True(t, f.Left.Down)

			f = tr.Next(Raw{Left: true}, start+tt.held/2)
			assert.False(t, f.Left.Pressed)
			assert.True(t, f.Left.Down)

			f = tr.Next(Raw{}, start+tt.held)
			assert.True(t, f.Left.Released)
			assert.Equal(t, tt.clicked, f.Left.Clicked)
			assert.False(t, f.Right.Released)
		})
	}
}

func TestTrackerButtonsIndependent(t *testing.T) {
	tr := NewTracker(nil)
	tr.Next(Raw{Right: true}, 0)
	f := tr.Next(Raw{Right: true, Left: true}, time.Second)
	assert.True(t, f.Left.Pressed)
	assert.False(t, f.Right.Pressed)

	f = tr.Next(Raw{Left: true}, time.Second+50*time.Millisecond)
	assert.True(t, f.Right.Released)
	assert.False(t, f.Right.Clicked, "right was held for over a second")
}

func TestTrackerActions(t *testing.T) {
	tr := NewTracker(testKeymap(t))

	f := tr.Next(Raw{KeyPresses: []string{"E", "Q"}}, 0)
	assert.Equal(t, []Action{ActionExtrude}, f.Actions)
	assert.True(t, f.Has(ActionExtrude))
	assert.False(t, f.Has(ActionCopy))

	f = tr.Next(Raw{KeyPresses: []string{"C"}, Ctrl: true}, 0)
	assert.Equal(t, []Action{ActionCopy}, f.Actions)

	f = tr.Next(Raw{KeyPresses: []string{"C"}}, 0)
	assert.Empty(t, f.Actions, "copy needs ctrl")
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in      string
		want    Binding
		wantErr bool
	}{
		{"E", Binding{Key: "E"}, false},
		{"Ctrl+C", Binding{Key: "C", Ctrl: true}, false},
		{"ctrl+shift+S", Binding{Key: "S", Ctrl: true, Shift: true}, false},
		{"Delete", Binding{Key: "Delete"}, false},
		{"Alt+X", Binding{}, true},
		{"Ctrl+", Binding{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBinding(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBinding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Ctrl+Shift+S", Binding{Key: "S", Ctrl: true, Shift: true}.String())
}

func TestKeymapResolve(t *testing.T) {
	km := testKeymap(t)

	a, ok := km.Resolve("e", false, false)
	require.True(t, ok)
	assert.Equal(t, ActionExtrude, a)

	a, ok = km.Resolve("F", false, true)
	require.True(t, ok, "shift is ignored for plain bindings")
	assert.Equal(t, ActionFill, a)

	_, ok = km.Resolve("E", true, false)
	assert.False(t, ok)

	a, ok = km.Resolve("S", true, true)
	require.True(t, ok)
	assert.Equal(t, ActionSave, a)

	_, ok = km.Resolve("S", true, false)
	assert.False(t, ok)
}

func TestNewKeymapRejectsDuplicates(t *testing.T) {
	_, err := NewKeymap(map[Action]string{
		ActionExtrude: "E",
		ActionFill:    "e",
	})
	assert.ErrorIs(t, err, ErrInvalidBinding)
}

func TestNewKeymapRejectsUnknownAction(t *testing.T) {
	_, err := NewKeymap(map[Action]string{"explode": "X"})
	assert.ErrorIs(t, err, ErrInvalidBinding)

	assert.True(t, ActionQuit.Known())
	assert.False(t, Action("explode").Known())
}
