// pkg/platform/resolver.go
package platform

import (
	"fmt"
)

// ResolvePkgConfig returns the pkg-config command to run.
//
// Priority:
// 1. Binary inside the user-configured directory
// 2. pkg-config found on PATH
//
// When neither applies the bare command name is returned along with an
// error, so callers can warn and still let each invocation fail on its own.
func ResolvePkgConfig(p *Platform, dir string) (string, error) {
	if dir != "" {
		return p.Shell.Join(dir, PkgConfigBinary), nil
	}
	if !p.HasPkgConfig() {
		return PkgConfigBinary, fmt.Errorf("%s not found on PATH", PkgConfigBinary)
	}
	return PkgConfigBinary, nil
}
