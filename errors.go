// errors.go
package pkgflags

import (
	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/reconcile"
)

var (
	// ErrProcessLaunch indicates pkg-config could not be started
	ErrProcessLaunch = core.ErrProcessLaunch

	// ErrCommandFailed indicates pkg-config exited with a non-zero status
	ErrCommandFailed = core.ErrCommandFailed

	// ErrStorageWrite indicates a checked-state attribute could not be stored
	ErrStorageWrite = core.ErrStorageWrite

	// ErrNotManaged indicates the configuration has no compiler or linker tool
	ErrNotManaged = core.ErrNotManaged

	// ErrUnknownConfiguration indicates the named build configuration does not exist
	ErrUnknownConfiguration = core.ErrUnknownConfiguration

	// ErrPackageNotFound indicates pkg-config does not know the package
	ErrPackageNotFound = core.ErrPackageNotFound

	// ErrInvalidPackage indicates the package name is empty or malformed
	ErrInvalidPackage = core.ErrInvalidPackage

	// ErrBusy indicates an event arrived while another was being applied
	ErrBusy = reconcile.ErrBusy
)

// Error wraps an error with additional context
type Error = core.Error
