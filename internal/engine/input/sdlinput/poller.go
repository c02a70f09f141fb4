// Package sdlinput collects SDL2 events into input.Raw snapshots.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/polytope4d/internal/engine/input"
)

// Poller accumulates SDL events between frames.
type Poller struct {
	raw input.Raw
}

// New creates a poller.
func New() *Poller {
	return &Poller{}
}

// Poll drains the SDL event queue and returns the state for this frame.
func (p *Poller) Poll() input.Raw {
	// Per-frame fields start empty; held state carries over.
	p.raw.Scroll = 0
	p.raw.KeyPresses = p.raw.KeyPresses[:0]
	p.raw.Quit = false
	p.raw.Resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.raw.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				p.raw.Resized = true
				p.raw.Width = int(e.Data1)
				p.raw.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				p.raw.KeyPresses = append(p.raw.KeyPresses, sdl.GetScancodeName(e.Keysym.Scancode))
			}

		case *sdl.MouseMotionEvent:
			p.raw.MouseX = float64(e.X)
			p.raw.MouseY = float64(e.Y)

		case *sdl.MouseButtonEvent:
			down := e.Type == sdl.MOUSEBUTTONDOWN
			switch e.Button {
			case sdl.BUTTON_LEFT:
				p.raw.Left = down
			case sdl.BUTTON_RIGHT:
				p.raw.Right = down
			}
			p.raw.MouseX = float64(e.X)
			p.raw.MouseY = float64(e.Y)

		case *sdl.MouseWheelEvent:
			p.raw.Scroll += float64(e.Y)
		}
	}

	mod := sdl.GetModState()
	p.raw.Shift = mod&sdl.KMOD_SHIFT != 0
	p.raw.Ctrl = mod&sdl.KMOD_CTRL != 0

	return p.raw
}
