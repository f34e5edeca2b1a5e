// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// PkgConfigBinary is the command name looked up on PATH
const PkgConfigBinary = "pkg-config"

// Platform represents the detected system platform
type Platform struct {
	OS        string // linux, darwin, windows
	Arch      string // amd64, arm64, 386, arm
	Shell     Shell  // Shell pkg-config is launched through
	PkgConfig string // Resolved pkg-config path, empty when not on PATH
}

// Detect detects the current platform and whether pkg-config is available
func Detect() (*Platform, error) {
	shell, err := ShellFor(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	p := &Platform{
		OS:    runtime.GOOS,
		Arch:  runtime.GOARCH,
		Shell: shell,
	}

	if path, err := exec.LookPath(PkgConfigBinary); err == nil {
		p.PkgConfig = path
	}

	return p, nil
}

// HasPkgConfig reports whether pkg-config was found on PATH
func (p *Platform) HasPkgConfig() bool {
	return p.PkgConfig != ""
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	pc := p.PkgConfig
	if pc == "" {
		pc = "not found"
	}
	return fmt.Sprintf("%s/%s (shell: %s, pkg-config: %s)", p.OS, p.Arch, p.Shell.Path, pc)
}
