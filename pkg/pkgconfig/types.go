// types.go
package pkgconfig

import (
	"time"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/platform"
	"github.com/sirupsen/logrus"
)

// Config configures the pkg-config client
type Config struct {
	Binary  string         // pkg-config command, optionally with a directory prefix
	Shell   platform.Shell // Shell the command line runs through (detected if empty)
	Env     []string       // Subprocess environment (nil inherits the current one)
	Timeout time.Duration  // Per-invocation limit
	Debug   bool           // Enable debug logging
	Logger  logrus.FieldLogger
}

// Client runs pkg-config and returns its output
type Client struct {
	config *Config
	logger logrus.FieldLogger
}

// Flags holds every flag category pkg-config reports for one package
type Flags struct {
	Package      string
	IncludePaths []string
	LibraryPaths []string
	Libraries    []string
	OtherFlags   []string
}

// Get returns the tokens of one category
func (f *Flags) Get(category core.FlagCategory) []string {
	switch category {
	case core.IncludePath:
		return f.IncludePaths
	case core.LibraryPath:
		return f.LibraryPaths
	case core.LibraryName:
		return f.Libraries
	case core.OtherFlag:
		return f.OtherFlags
	default:
		return nil
	}
}

// Empty reports whether no category holds a token
func (f *Flags) Empty() bool {
	return len(f.IncludePaths) == 0 && len(f.LibraryPaths) == 0 &&
		len(f.Libraries) == 0 && len(f.OtherFlags) == 0
}
