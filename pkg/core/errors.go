// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessLaunch indicates the pkg-config process could not be started
	ErrProcessLaunch = errors.New("pkg-config could not be started")

	// ErrCommandFailed indicates pkg-config exited with a non-zero status
	ErrCommandFailed = errors.New("pkg-config failed")

	// ErrStorageWrite indicates a checked-state attribute could not be stored
	ErrStorageWrite = errors.New("storage write failed")

	// ErrNotManaged indicates the configuration has no compiler or linker tool
	ErrNotManaged = errors.New("not a managed build configuration")

	// ErrUnknownConfiguration indicates the named build configuration does not exist
	ErrUnknownConfiguration = errors.New("unknown build configuration")

	// ErrPackageNotFound indicates pkg-config does not know the package
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidPackage indicates the package name is empty or malformed
	ErrInvalidPackage = errors.New("invalid package")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
