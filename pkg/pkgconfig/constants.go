// constants.go
package pkgconfig

import (
	"time"

	"github.com/arc-language/pkgflags/pkg/core"
)

const (
	// DefaultBinary is the pkg-config command name
	DefaultBinary = "pkg-config"

	// DefaultTimeout bounds one pkg-config invocation
	DefaultTimeout = 10 * time.Second
)

// Flag modes passed to pkg-config
const (
	ModeCflags     = "--cflags"
	ModeLibPaths   = "--libs-only-L"
	ModeLibNames   = "--libs-only-l"
	ModeAll        = "--cflags --libs"
	ModeListAll    = "--list-all"
	ModeModVersion = "--modversion"
	ModeExists     = "--exists"
)

// Token prefixes in pkg-config output
const (
	IncludePrefix     = "-I"
	LibraryPathPrefix = "-L"
	LibraryNamePrefix = "-l"
)

// ModeFor returns the flag mode whose output carries category's tokens.
// Include paths and other flags share --cflags; library paths and names
// use the filtered --libs-only-* modes.
func ModeFor(category core.FlagCategory) string {
	switch category {
	case core.IncludePath, core.OtherFlag:
		return ModeCflags
	case core.LibraryPath:
		return ModeLibPaths
	case core.LibraryName:
		return ModeLibNames
	default:
		return ""
	}
}
