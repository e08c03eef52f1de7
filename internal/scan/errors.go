package scan

import (
	"errors"
	"fmt"
	"io/fs"
)

// AccessKind categorizes a recoverable per-directory failure.
type AccessKind int

// Access failure kinds.
const (
	AccessPermission AccessKind = iota
	AccessNotFound
	AccessOther
)

// String returns the kind's wire name, used in reports and error logs.
func (k AccessKind) String() string {
	switch k {
	case AccessPermission:
		return "permission"
	case AccessNotFound:
		return "not-found"
	default:
		return "other"
	}
}

// AccessError is a recoverable failure to list one directory.
// The scan records it and continues elsewhere.
type AccessError struct {
	// Path is the directory that could not be read.
	Path string `json:"path"`
	// Kind is the failure category.
	Kind AccessKind `json:"-"`
	// Err is the underlying cause.
	Err error `json:"-"`
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("accessing %q: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// newAccessError wraps err with its path and classifies it.
func newAccessError(path string, err error) *AccessError {
	kind := AccessOther

	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = AccessPermission
	case errors.Is(err, fs.ErrNotExist):
		kind = AccessNotFound
	}

	return &AccessError{Path: path, Kind: kind, Err: err}
}

// InvalidRootError is fatal: the scan root does not exist or is not a
// directory. It short-circuits before any traversal begins.
type InvalidRootError struct {
	Path string
	Err  error
}

func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid root %q: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("invalid root %q: not a directory", e.Path)
}

func (e *InvalidRootError) Unwrap() error { return e.Err }
