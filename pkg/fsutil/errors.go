package fsutil

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrEmptyPath is returned, before any I/O, when an operation is called with
// an empty path.
var ErrEmptyPath = errors.New("path is required")

// ErrnoError reports an OS error code that was synthesized rather than
// returned by a system call, such as ENOTDIR when stat(2) succeeds on a path
// that is not a directory.
type ErrnoError struct {
	Errno   syscall.Errno
	Syscall string
	Path    string
}

func newErrnoError(errno syscall.Errno, syscallName, path string) *ErrnoError {
	return &ErrnoError{Errno: errno, Syscall: syscallName, Path: path}
}

// Code returns the symbolic name of the error code, e.g. "ENOTDIR".
func (e *ErrnoError) Code() string {
	return errnoName(e.Errno)
}

func (e *ErrnoError) Error() string {
	return fmt.Sprintf("%s, %s '%s'", e.Code(), e.Syscall, e.Path)
}

// Unwrap returns the underlying errno so errors.Is(err, syscall.ENOTDIR) holds.
func (e *ErrnoError) Unwrap() error {
	return e.Errno
}

// ErrnoCode returns the symbolic OS error code carried by err, or "" when
// err carries none. It understands both *ErrnoError and any error wrapping a
// syscall.Errno, such as the *fs.PathError values returned by the os package.
func ErrnoCode(err error) string {
	var errnoErr *ErrnoError
	if errors.As(err, &errnoErr) {
		return errnoErr.Code()
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errnoName(errno)
	}
	return ""
}
