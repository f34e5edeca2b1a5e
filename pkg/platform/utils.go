// pkg/platform/utils.go
package platform

import (
	"fmt"
	"strings"
)

// Shell runs a single command line, the way pkg-config is invoked on each OS
type Shell struct {
	Path    string // bash or cmd
	Flag    string // -c or /c
	Windows bool
}

// ShellFor returns the shell used on goos
func ShellFor(goos string) (Shell, error) {
	switch goos {
	case "windows":
		return Shell{Path: "cmd", Flag: "/c", Windows: true}, nil
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos", "aix":
		return Shell{Path: "bash", Flag: "-c"}, nil
	default:
		return Shell{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Args returns the argv that runs cmdline through the shell
func (s Shell) Args(cmdline string) []string {
	return []string{s.Path, s.Flag, cmdline}
}

// Join prefixes binary with dir using the OS path separator
func (s Shell) Join(dir, binary string) string {
	if dir == "" {
		return binary
	}
	sep := "/"
	if s.Windows {
		sep = `\`
	}
	return strings.TrimRight(dir, `/\`) + sep + binary
}

// Quote quotes arg for the shell when it holds anything outside a safe set
func (s Shell) Quote(arg string) string {
	unsafe := unsafeRune
	if s.Windows {
		// cmd leaves backslashes alone, so Windows paths only need quoting for spaces
		unsafe = func(r rune) bool { return r != '\\' && unsafeRune(r) }
	}
	if arg != "" && strings.IndexFunc(arg, unsafe) < 0 {
		return arg
	}
	if s.Windows {
		return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func unsafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("+-._,:/=@", r):
		return false
	}
	return true
}
