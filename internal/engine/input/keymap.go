package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a discrete command bound to a key.
type Action string

const (
	ActionExtrude      Action = "extrude"
	ActionDelete       Action = "delete"
	ActionFill         Action = "fill"
	ActionCopy         Action = "copy"
	ActionPaste        Action = "paste"
	ActionFreeze       Action = "freeze"
	ActionSelectAll    Action = "select_all"
	ActionNewTesseract Action = "new_tesseract"
	ActionVertexMode   Action = "vertex_mode"
	ActionEdgeMode     Action = "edge_mode"
	ActionOpen         Action = "open"
	ActionSave         Action = "save"
	ActionScreenshot   Action = "screenshot"
	ActionQuit         Action = "quit"
)

// Actions lists every known action.
var Actions = []Action{
	ActionExtrude, ActionDelete, ActionFill, ActionCopy, ActionPaste,
	ActionFreeze, ActionSelectAll, ActionNewTesseract, ActionVertexMode,
	ActionEdgeMode, ActionOpen, ActionSave, ActionScreenshot, ActionQuit,
}

// Known reports whether a is one of Actions.
func (a Action) Known() bool {
	for _, k := range Actions {
		if a == k {
			return true
		}
	}
	return false
}

// ErrInvalidBinding is returned for a malformed key binding.
var ErrInvalidBinding = errors.New("invalid key binding")

// Binding is a key name with required modifiers, e.g. "Ctrl+C".
type Binding struct {
	Key   string
	Ctrl  bool
	Shift bool
}

// ParseBinding parses "Ctrl+Shift+S" style bindings. Key names follow SDL
// naming and compare case-insensitively.
func ParseBinding(s string) (Binding, error) {
	parts := strings.Split(s, "+")
	var b Binding
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl":
			b.Ctrl = true
		case "shift":
			b.Shift = true
		default:
			return Binding{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidBinding, p, s)
		}
	}
	b.Key = strings.TrimSpace(parts[len(parts)-1])
	if b.Key == "" {
		return Binding{}, fmt.Errorf("%w: %q", ErrInvalidBinding, s)
	}
	return b, nil
}

func (b Binding) String() string {
	var sb strings.Builder
	if b.Ctrl {
		sb.WriteString("Ctrl+")
	}
	if b.Shift {
		sb.WriteString("Shift+")
	}
	sb.WriteString(b.Key)
	return sb.String()
}

// Keymap maps bindings to actions.
type Keymap map[Binding]Action

// NewKeymap parses a binding-by-action table, as stored in config.
func NewKeymap(bindings map[Action]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for action, s := range bindings {
		if s == "" {
			continue
		}
		if !action.Known() {
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidBinding, action)
		}
		b, err := ParseBinding(s)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", action, err)
		}
		b.Key = strings.ToLower(b.Key)
		if prev, ok := km[b]; ok {
			return nil, fmt.Errorf("%w: %s bound to both %s and %s", ErrInvalidBinding, s, prev, action)
		}
		km[b] = action
	}
	return km, nil
}

// Resolve finds the action for a key press. Modifiers must match exactly,
// except that shift is ignored for bindings without Ctrl, since shift is
// also the additive-selection modifier.
func (km Keymap) Resolve(key string, ctrl, shift bool) (Action, bool) {
	key = strings.ToLower(key)
	if a, ok := km[Binding{Key: key, Ctrl: ctrl, Shift: shift}]; ok {
		return a, true
	}
	if !ctrl && shift {
		a, ok := km[Binding{Key: key}]
		return a, ok
	}
	return "", false
}
