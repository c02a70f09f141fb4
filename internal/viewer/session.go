package viewer

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/editor"
	"github.com/Faultbox/polytope4d/internal/engine/input"
	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/logger"
	"github.com/Faultbox/polytope4d/internal/project"
)

// Request is work a host action leaves for the frame loop.
type Request int

const (
	RequestNone Request = iota
	RequestQuit
	RequestScreenshot
)

// Session connects the editor to files: dialogs, open, save and reload.
// It runs on the frame loop goroutine.
type Session struct {
	Editor  *editor.Editor
	Dialog  project.Dialog
	Watcher *project.Watcher // nil when watching is disabled

	// Notify, if set, is shown failures that the user should see.
	Notify func(error)

	log *zap.Logger
}

// NewSession wraps ed. watcher may be nil.
func NewSession(ed *editor.Editor, dialog project.Dialog, watcher *project.Watcher) *Session {
	return &Session{
		Editor:  ed,
		Dialog:  dialog,
		Watcher: watcher,
		log:     logger.Named("session"),
	}
}

// Open loads path as a new object and starts watching it.
func (s *Session) Open(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	m, err := project.Open(path)
	if err != nil {
		return err
	}
	s.Editor.AddObject(m, path)
	s.watch(path)
	return nil
}

// OpenAll opens every path, reporting failures and continuing. If nothing
// could be opened the session starts with a tesseract.
func (s *Session) OpenAll(paths []string) {
	for _, p := range paths {
		if err := s.Open(p); err != nil {
			s.report("open failed", err)
		}
	}
	if len(s.Editor.Objects) == 0 {
		s.Editor.AddObject(mesh.Tesseract(), "")
	}
}

// OpenDialog asks for a file and opens it.
func (s *Session) OpenDialog() error {
	path, err := s.Dialog.OpenPath()
	if err != nil {
		return err
	}
	return s.Open(path)
}

// SaveDialog asks for a destination and saves there.
func (s *Session) SaveDialog() error {
	path, err := s.Dialog.SavePath()
	if err != nil {
		return err
	}
	return s.Save(path)
}

// Save writes every object into one file. A lone object adopts the new
// path, so later changes to that file reload it.
func (s *Session) Save(path string) error {
	data, err := project.Encode(s.Editor.Meshes()...)
	if err != nil {
		return err
	}
	path = project.WithExtension(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if s.Watcher != nil {
		s.Watcher.Expect(path, data)
	}
	if err := project.WriteFile(path, data); err != nil {
		return err
	}

	if len(s.Editor.Objects) == 1 {
		o := s.Editor.Objects[0]
		if old := o.Path; old != path {
			o.Path = path
			s.unwatch(old)
			s.watch(path)
		}
	}
	return nil
}

// ApplyReloads replaces objects whose files changed. It never blocks.
// A file that fails to decode leaves its object untouched.
func (s *Session) ApplyReloads() int {
	if s.Watcher == nil {
		return 0
	}
	n := 0
	for {
		select {
		case r := <-s.Watcher.Reloads():
			if s.reload(r) {
				n++
			}
		default:
			return n
		}
	}
}

func (s *Session) reload(r project.Reload) bool {
	o, ok := s.Editor.ObjectByPath(r.Path)
	if !ok {
		return false
	}
	if r.Err != nil {
		s.report("reload failed", r.Err)
		return false
	}
	if err := s.Editor.ReplaceObject(o.ID, r.Mesh); err != nil {
		return false
	}
	s.log.Info("reloaded", zap.String("path", r.Path), zap.Stringer("id", o.ID))
	return true
}

// Handle runs host actions. Editing actions are left to the editor.
func (s *Session) Handle(action input.Action) Request {
	switch action {
	case input.ActionQuit:
		return RequestQuit
	case input.ActionScreenshot:
		return RequestScreenshot
	case input.ActionOpen:
		if err := s.OpenDialog(); err != nil {
			s.report("open failed", err)
		}
	case input.ActionSave:
		if err := s.SaveDialog(); err != nil {
			s.report("save failed", err)
		}
	}
	return RequestNone
}

// Title names the active object for the window title.
func (s *Session) Title() string {
	ed := s.Editor
	if ed.Active < 0 || ed.Active >= len(ed.Objects) {
		return ""
	}
	o := ed.Objects[ed.Active]
	if o.Path != "" {
		return filepath.Base(o.Path)
	}
	return o.Mesh.Name
}

func (s *Session) watch(path string) {
	if s.Watcher == nil || path == "" {
		return
	}
	if err := s.Watcher.Add(path); err != nil {
		s.log.Warn("cannot watch file", zap.String("path", path), zap.Error(err))
	}
}

func (s *Session) unwatch(path string) {
	if s.Watcher == nil || path == "" {
		return
	}
	if _, still := s.Editor.ObjectByPath(path); still {
		return
	}
	if err := s.Watcher.Remove(path); err != nil {
		s.log.Warn("cannot unwatch file", zap.String("path", path), zap.Error(err))
	}
}

// report logs err and shows it unless the user cancelled.
func (s *Session) report(msg string, err error) {
	if errors.Is(err, project.ErrCancel) {
		s.log.Debug(msg, zap.Error(err))
		return
	}
	s.log.Warn(msg, zap.Error(err))
	if s.Notify != nil {
		s.Notify(err)
	}
}
