// Package viewer runs the interactive editor window.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/config"
	"github.com/Faultbox/polytope4d/internal/editor"
	"github.com/Faultbox/polytope4d/internal/engine/camera"
	"github.com/Faultbox/polytope4d/internal/engine/debug"
	"github.com/Faultbox/polytope4d/internal/engine/input"
	"github.com/Faultbox/polytope4d/internal/engine/input/sdlinput"
	"github.com/Faultbox/polytope4d/internal/engine/renderer"
	"github.com/Faultbox/polytope4d/internal/engine/window"
	"github.com/Faultbox/polytope4d/internal/logger"
	"github.com/Faultbox/polytope4d/internal/project"
	"github.com/Faultbox/polytope4d/internal/project/native"
)

// Viewer owns the window and drives one editor session.
type Viewer struct {
	cfg     *config.Config
	running bool

	window      *window.Window
	renderer    *renderer.Renderer
	poller      *sdlinput.Poller
	tracker     *input.Tracker
	session     *Session
	screenshots *debug.ScreenshotCapture

	title string
}

// New opens the window and loads the files named in cfg.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	keymap, err := NewKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:         cfg,
		poller:      sdlinput.New(),
		tracker:     input.NewTracker(keymap),
		screenshots: debug.NewScreenshotCapture(cfg.Files.ScreenshotDir, "polytope"),
	}

	// Window first: the renderer needs its GL context.
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.Size()
	fbWidth, fbHeight := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:    width,
		Height:   height,
		FBWidth:  fbWidth,
		FBHeight: fbHeight,
		Style: renderer.Style{
			PointSize:    float64(cfg.View.PointSize) / 2,
			ShowVertices: cfg.View.ShowVertices,
		},
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var watcher *project.Watcher
	if cfg.Files.Watch {
		watcher, err = project.NewWatcher(cfg.Files.WatchDebounce)
		if err != nil {
			logger.Warn("file watching disabled", zap.Error(err))
			watcher = nil
		} else {
			watcher.Start()
		}
	}

	ed := editor.New(NewCamera(cfg.View), width, height)
	v.session = NewSession(ed, native.Dialog{}, watcher)
	v.session.Notify = native.ShowError
	v.session.OpenAll(cfg.Files.Open)

	logger.Info("viewer initialized", zap.Int("objects", len(ed.Objects)))
	return v, nil
}

// NewCamera builds the view rotation state from settings.
func NewCamera(cfg config.ViewConfig) *camera.View {
	c := camera.NewView()
	c.Distance = cfg.Distance
	c.DragSensitivity = cfg.DragSensitivity
	c.ScrollSensitivity = cfg.ScrollSensitivity
	c.CommitOnRelease = cfg.CommitOnRelease
	return c
}

// NewKeymap converts configured bindings (action name to key) to a Keymap.
func NewKeymap(keys map[string]string) (input.Keymap, error) {
	bindings := make(map[input.Action]string, len(keys))
	for name, key := range keys {
		bindings[input.Action(strings.ToLower(name))] = key
	}
	km, err := input.NewKeymap(bindings)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	return km, nil
}

// Run starts the frame loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		frame := v.tracker.Next(v.poller.Poll(), now.Sub(start))
		if frame.Quit {
			break
		}
		if frame.Resized {
			width, height := v.window.Size()
			fbWidth, fbHeight := v.window.DrawableSize()
			v.renderer.Resize(width, height, fbWidth, fbHeight)
		}

		v.session.ApplyReloads()
		v.session.Editor.Update(frame)

		screenshot := false
		for _, a := range frame.Actions {
			switch v.session.Handle(a) {
			case RequestQuit:
				v.running = false
			case RequestScreenshot:
				screenshot = true
				if frame.Shift {
					v.chooseScreenshotDir()
				}
			}
		}

		v.renderer.Draw(v.session.Editor.View())
		if screenshot {
			v.screenshot()
		}
		v.window.SwapBuffers()

		if t := v.session.Title(); t != v.title {
			v.title = t
			v.window.SetTitle(t)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	a := v.session.Editor.Camera.Angle
	caption := fmt.Sprintf("%s  XY %.2f XZ %.2f XW %.2f YZ %.2f YW %.2f ZW %.2f",
		v.title, a.XY, a.XZ, a.XW, a.YZ, a.YW, a.ZW)

	path, err := v.screenshots.CaptureFromPixels(pixels, w, h, caption)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) chooseScreenshotDir() {
	dir, err := v.session.Dialog.ScreenshotDir()
	if err != nil {
		v.session.report("screenshot folder", err)
		return
	}
	v.screenshots.SetOutputDir(dir)
	logger.Info("screenshot folder changed", zap.String("dir", dir))
}

// Close releases the window and stops watching files.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.session != nil && v.session.Watcher != nil {
		if err := v.session.Watcher.Close(); err != nil {
			logger.Warn("closing watcher", zap.Error(err))
		}
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
