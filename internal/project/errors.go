package project

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Faultbox/polytope4d/pkg/formats"
)

var (
	// ErrCancel is returned when the user dismisses a dialog. It is not a failure.
	ErrCancel = errors.New("cancelled")
	// ErrUnknown covers dialog and I/O failures with no better classification.
	ErrUnknown = errors.New("unknown error")
)

// ImportKind classifies why a file could not be opened.
type ImportKind int

const (
	FileNotFound ImportKind = iota
	InvalidExtension
	FileCorrupted
)

func (k ImportKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case InvalidExtension:
		return "invalid extension"
	case FileCorrupted:
		return "file corrupted"
	default:
		return fmt.Sprintf("ImportKind(%d)", int(k))
	}
}

// ImportError reports a failed open.
type ImportError struct {
	Kind ImportKind
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("import failed: %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("import failed: %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// IsImportKind reports whether err is an ImportError of the given kind.
func IsImportKind(err error, kind ImportKind) bool {
	var ie *ImportError
	return errors.As(err, &ie) && ie.Kind == kind
}

// classify maps a read/parse failure to an ImportError.
func classify(path string, err error) error {
	kind := FileCorrupted
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = FileNotFound
	case errors.Is(err, formats.ErrInvalidP4DMagic):
		kind = InvalidExtension
	case errors.Is(err, formats.ErrTruncatedP4DData),
		errors.Is(err, formats.ErrTrailingP4DData),
		errors.Is(err, formats.ErrInvalidP4DIndex):
		kind = FileCorrupted
	default:
		return fmt.Errorf("%w: reading %s: %v", ErrUnknown, path, err)
	}
	return &ImportError{Kind: kind, Path: path, Err: err}
}
