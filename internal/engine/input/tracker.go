package input

import "time"

// Tracker derives per-frame edges from successive Raw snapshots.
type Tracker struct {
	Keymap Keymap

	started        bool
	prevX, prevY   float64
	prevLeft       bool
	prevRight      bool
	leftPressedAt  time.Duration
	rightPressedAt time.Duration
}

// NewTracker creates a tracker resolving key presses through keymap.
func NewTracker(keymap Keymap) *Tracker {
	return &Tracker{Keymap: keymap}
}

// Next builds the frame for raw captured at time now (monotonic, any origin).
func (t *Tracker) Next(raw Raw, now time.Duration) Frame {
	f := Frame{
		MouseX:  raw.MouseX,
		MouseY:  raw.MouseY,
		Scroll:  raw.Scroll,
		Shift:   raw.Shift,
		Ctrl:    raw.Ctrl,
		Now:     now,
		Quit:    raw.Quit,
		Resized: raw.Resized,
		Width:   raw.Width,
		Height:  raw.Height,
	}

	// First frame has no previous position to measure against.
	if t.started {
		f.DeltaX = raw.MouseX - t.prevX
		f.DeltaY = raw.MouseY - t.prevY
	}

	f.Left = button(raw.Left, t.prevLeft, &t.leftPressedAt, now)
	f.Right = button(raw.Right, t.prevRight, &t.rightPressedAt, now)

	for _, name := range raw.KeyPresses {
		if a, ok := t.Keymap.Resolve(name, raw.Ctrl, raw.Shift); ok {
			f.Actions = append(f.Actions, a)
		}
	}

	t.started = true
	t.prevX, t.prevY = raw.MouseX, raw.MouseY
	t.prevLeft, t.prevRight = raw.Left, raw.Right
	return f
}

func button(down, prev bool, pressedAt *time.Duration, now time.Duration) ButtonState {
	s := ButtonState{
		Down:     down,
		Pressed:  down && !prev,
		Released: !down && prev,
	}
	if s.Pressed {
		*pressedAt = now
	}
	if s.Released {
		s.Clicked = now-*pressedAt < ClickTimeout
	}
	return s
}
