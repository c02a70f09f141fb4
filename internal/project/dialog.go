package project

// Dialog asks the user for file paths. Implementations return ErrCancel when
// the user backs out and wrap other failures in ErrUnknown.
type Dialog interface {
	OpenPath() (string, error)
	SavePath() (string, error)
	ScreenshotDir() (string, error)
}
