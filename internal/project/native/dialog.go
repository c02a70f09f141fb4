// Package native implements project.Dialog with the platform file chooser.
package native

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/polytope4d/internal/project"
)

// Dialog uses the platform file chooser.
type Dialog struct{}

var _ project.Dialog = Dialog{}

func (Dialog) OpenPath() (string, error) {
	path, err := dialog.File().
		Filter("4D Polytope", "4dp").
		Filter("All files", "*").
		Title("Open Polytope").
		Load()
	return path, dialogErr(err)
}

func (Dialog) SavePath() (string, error) {
	path, err := dialog.File().
		Filter("4D Polytope", "4dp").
		Title("Save Polytope").
		Save()
	return path, dialogErr(err)
}

func (Dialog) ScreenshotDir() (string, error) {
	path, err := dialog.Directory().Title("Screenshot Folder").Browse()
	return path, dialogErr(err)
}

// ShowError pops a modal error box.
func ShowError(err error) {
	dialog.Message("%v", err).Title("Polytope4D").Error()
}

func dialogErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dialog.ErrCancelled):
		return project.ErrCancel
	default:
		return fmt.Errorf("%w: dialog: %v", project.ErrUnknown, err)
	}
}
