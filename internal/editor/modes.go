package editor

// Mode is a pick target for clicks.
type Mode int

const (
	VertexMode Mode = iota
	EdgeMode
)

func (m Mode) String() string {
	if m == EdgeMode {
		return "edge"
	}
	return "vertex"
}

// SelectionModes tracks which pick targets are enabled. At least one mode
// is always enabled.
type SelectionModes struct {
	Vertex bool
	Edge   bool
}

// Enabled reports whether mode is on.
func (s SelectionModes) Enabled(mode Mode) bool {
	if mode == EdgeMode {
		return s.Edge
	}
	return s.Vertex
}

func (s *SelectionModes) set(mode Mode, on bool) {
	if mode == EdgeMode {
		s.Edge = on
	} else {
		s.Vertex = on
	}
}

func (s SelectionModes) count() int {
	n := 0
	if s.Vertex {
		n++
	}
	if s.Edge {
		n++
	}
	return n
}

// Toggle switches to mode. Without additive, mode becomes the only enabled
// one. With additive, mode is flipped unless that would disable the last
// enabled mode.
func (s *SelectionModes) Toggle(mode Mode, additive bool) {
	if !additive {
		*s = SelectionModes{}
		s.set(mode, true)
		return
	}
	if s.count() > 1 {
		s.set(mode, !s.Enabled(mode))
		return
	}
	s.set(mode, true)
}
