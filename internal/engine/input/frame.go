// Package input turns raw per-frame device state into edge-triggered
// button states and bound actions.
package input

import "time"

// ClickTimeout is the longest press that still counts as a click.
const ClickTimeout = 200 * time.Millisecond

// ButtonState is one mouse button as seen by a single frame.
type ButtonState struct {
	Down     bool // held this frame
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Clicked  bool // released within ClickTimeout of the press
}

// Frame is everything the editor needs from one tick of input.
type Frame struct {
	MouseX, MouseY float64
	DeltaX, DeltaY float64
	Scroll         float64

	Left, Right ButtonState
	Shift, Ctrl bool

	Actions []Action

	Now time.Duration

	Quit          bool
	Resized       bool
	Width, Height int
}

// Has reports whether action was triggered this frame.
func (f *Frame) Has(action Action) bool {
	for _, a := range f.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Moved reports whether the mouse moved since the previous frame.
func (f *Frame) Moved() bool {
	return f.DeltaX != 0 || f.DeltaY != 0
}

// Raw is the device state collected for one frame before edge detection.
type Raw struct {
	MouseX, MouseY float64
	Left, Right    bool
	Scroll         float64
	Shift, Ctrl    bool

	// Keys that went down this frame, by SDL key name. Auto-repeat is excluded.
	KeyPresses []string

	Quit          bool
	Resized       bool
	Width, Height int
}
