// client.go
package pkgconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/platform"
	"github.com/sirupsen/logrus"
)

// NewClient creates a pkg-config client, filling in defaults
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Shell.Path == "" {
		shell, err := platform.ShellFor(runtime.GOOS)
		if err != nil {
			shell = platform.Shell{Path: "bash", Flag: "-c"}
		}
		cfg.Shell = shell
	}

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		if cfg.Debug {
			l.SetLevel(logrus.DebugLevel)
		} else {
			l.SetOutput(io.Discard)
		}
		logger = l
	}

	c := &Client{
		config: cfg,
		logger: logger.WithField("component", "pkg-config"),
	}

	c.logger.WithFields(logrus.Fields{
		"binary":  cfg.Binary,
		"shell":   cfg.Shell.Path,
		"timeout": cfg.Timeout,
	}).Debug("Initialized pkg-config client")

	return c
}

// CommandLine returns the shell command line for mode and pkg
func (c *Client) CommandLine(mode, pkg string) string {
	line := c.config.Shell.Quote(c.config.Binary) + " " + mode
	if pkg != "" {
		line += " " + c.config.Shell.Quote(pkg)
	}
	return line
}

// Query runs pkg-config with mode for pkg and returns the first output line.
// An empty string with a nil error means pkg-config printed nothing.
func (c *Client) Query(ctx context.Context, mode, pkg string) (string, error) {
	if !ValidPackage(pkg) {
		return "", &core.Error{Op: "pkg-config " + mode, Package: pkg, Err: core.ErrInvalidPackage}
	}

	out, err := c.run(ctx, mode, pkg)
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimRight(line, "\r")

	c.logger.WithFields(logrus.Fields{"mode": mode, "package": pkg}).Debugf("Output: %q", line)
	return line, nil
}

// List runs pkg-config --list-all and returns every known package
func (c *Client) List(ctx context.Context) ([]core.Package, error) {
	out, err := c.run(ctx, ModeListAll, "")
	if err != nil {
		return nil, err
	}

	packages, err := ParseListing(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}

	c.logger.Debugf("Listed %d packages", len(packages))
	return packages, nil
}

// Version returns the version pkg-config reports for pkg
func (c *Client) Version(ctx context.Context, pkg string) (string, error) {
	line, err := c.Query(ctx, ModeModVersion, pkg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Exists reports whether pkg-config knows pkg
func (c *Client) Exists(ctx context.Context, pkg string) (bool, error) {
	if !ValidPackage(pkg) {
		return false, &core.Error{Op: "pkg-config " + ModeExists, Package: pkg, Err: core.ErrInvalidPackage}
	}
	if _, err := c.run(ctx, ModeExists, pkg); err != nil {
		if errors.Is(err, core.ErrCommandFailed) && ctx.Err() == nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Raw returns the combined --cflags --libs line for pkg, unparsed
func (c *Client) Raw(ctx context.Context, pkg string) (string, error) {
	line, err := c.Query(ctx, ModeAll, pkg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ValidPackage rejects blank names and names pkg-config would take as an option
func ValidPackage(pkg string) bool {
	return strings.TrimSpace(pkg) != "" && !strings.HasPrefix(pkg, "-")
}

// Flags queries every flag category for pkg.
// --cflags is run once and feeds both include paths and other flags.
func (c *Client) Flags(ctx context.Context, pkg string) (*Flags, error) {
	cflags, err := c.Query(ctx, ModeCflags, pkg)
	if err != nil {
		return nil, err
	}
	libPaths, err := c.Query(ctx, ModeLibPaths, pkg)
	if err != nil {
		return nil, err
	}
	libNames, err := c.Query(ctx, ModeLibNames, pkg)
	if err != nil {
		return nil, err
	}

	return &Flags{
		Package:      pkg,
		IncludePaths: ParseIncludePaths(cflags),
		OtherFlags:   ParseOtherFlags(cflags),
		LibraryPaths: ParseLibraryPaths(libPaths),
		Libraries:    ParseLibraryNames(libNames),
	}, nil
}

// run executes one pkg-config command line through the shell and returns stdout
func (c *Client) run(ctx context.Context, mode, pkg string) ([]byte, error) {
	op := "pkg-config " + mode
	cmdline := c.CommandLine(mode, pkg)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	args := c.config.Shell.Args(cmdline)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	rawCommandLine(cmd, c.config.Shell, cmdline)
	cmd.Env = c.config.Env
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.WithField("package", pkg).Debugf("Running: %s", cmdline)

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &core.Error{Op: op, Package: pkg, Err: fmt.Errorf("%w: %v", core.ErrCommandFailed, ctxErr)}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = exitErr.Error()
		}
		// The shell itself started but could not find the binary
		if code := exitErr.ExitCode(); code == 127 || (c.config.Shell.Windows && code == 9009) {
			return nil, &core.Error{Op: op, Package: pkg, Err: fmt.Errorf("%w: %s", core.ErrProcessLaunch, msg)}
		}
		return nil, &core.Error{
			Op:      op,
			Package: pkg,
			Err:     fmt.Errorf("%w: exit status %d: %s", core.ErrCommandFailed, exitErr.ExitCode(), msg),
		}
	}

	return nil, &core.Error{Op: op, Package: pkg, Err: fmt.Errorf("%w: %v", core.ErrProcessLaunch, err)}
}
