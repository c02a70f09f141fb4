// Package config handles editor configuration loading and management.
package config

import "time"

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	View    ViewConfig        `yaml:"view"`
	Keys    map[string]string `yaml:"keys"` // action name -> binding, e.g. copy: Ctrl+C
	Files   FilesConfig       `yaml:"files"`
	Logging LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ViewConfig holds camera and interaction settings.
type ViewConfig struct {
	Distance          float64 `yaml:"distance"`
	DragSensitivity   float64 `yaml:"drag_sensitivity"`
	ScrollSensitivity float64 `yaml:"scroll_sensitivity"`
	CommitOnRelease   bool    `yaml:"commit_on_release"`
	ShowVertices      bool    `yaml:"show_vertices"` // also outside vertex mode
	PointSize         float32 `yaml:"point_size"` // vertex diameter in pixels
}

// FilesConfig holds file handling settings.
type FilesConfig struct {
	Watch         bool          `yaml:"watch"`          // reload open files when they change on disk
	WatchDebounce time.Duration `yaml:"watch_debounce"` // quiet period before a reload
	ScreenshotDir string        `yaml:"screenshot_dir"`
	Open          []string      `yaml:"open"` // files loaded at startup
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() map[string]string {
	return map[string]string{
		"extrude":       "E",
		"delete":        "Delete",
		"fill":          "F",
		"copy":          "Ctrl+C",
		"paste":         "Ctrl+V",
		"freeze":        "R",
		"select_all":    "Ctrl+A",
		"new_tesseract": "T",
		"vertex_mode":   "1",
		"edge_mode":     "2",
		"open":          "Ctrl+O",
		"save":          "Ctrl+S",
		"screenshot":    "F12",
		"quit":          "Escape",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Polytope 4D",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		View: ViewConfig{
			Distance:          5.0,
			DragSensitivity:   200.0,
			ScrollSensitivity: 100.0,
			CommitOnRelease:   false,
			ShowVertices:      false,
			PointSize:         4,
		},
		Keys: DefaultKeys(),
		Files: FilesConfig{
			Watch:         true,
			WatchDebounce: 150 * time.Millisecond,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
