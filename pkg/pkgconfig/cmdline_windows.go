//go:build windows

package pkgconfig

import (
	"os/exec"
	"syscall"

	"github.com/arc-language/pkgflags/pkg/platform"
)

// rawCommandLine hands cmd its command line verbatim. cmd.exe does not
// understand the backslash escaping exec applies to quoted arguments.
func rawCommandLine(cmd *exec.Cmd, shell platform.Shell, cmdline string) {
	if !shell.Windows {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: shell.Path + " /s " + shell.Flag + ` "` + cmdline + `"`,
	}
}
