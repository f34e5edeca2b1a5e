//go:build !windows

package pkgconfig

import (
	"os/exec"

	"github.com/arc-language/pkgflags/pkg/platform"
)

func rawCommandLine(cmd *exec.Cmd, shell platform.Shell, cmdline string) {}
