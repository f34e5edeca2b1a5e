package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
)

// fakeRunner answers pkg-config queries from a table
type fakeRunner struct {
	packages map[string]map[string]string // package -> mode -> line
	calls    map[string]int               // "mode pkg" -> count
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		packages: make(map[string]map[string]string),
		calls:    make(map[string]int),
	}
}

func (f *fakeRunner) add(pkg, cflags, libPaths, libNames string) *fakeRunner {
	f.packages[pkg] = map[string]string{
		pkgconfig.ModeCflags:   cflags,
		pkgconfig.ModeLibPaths: libPaths,
		pkgconfig.ModeLibNames: libNames,
	}
	return f
}

func (f *fakeRunner) Query(ctx context.Context, mode, pkg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.calls[mode+" "+pkg]++
	modes, ok := f.packages[pkg]
	if !ok {
		return "", &core.Error{
			Op:      "pkg-config " + mode,
			Package: pkg,
			Err:     fmt.Errorf("%w: Package %s was not found", core.ErrCommandFailed, pkg),
		}
	}
	return modes[mode], nil
}

func (f *fakeRunner) List(ctx context.Context) ([]core.Package, error) {
	var pkgs []core.Package
	for name := range f.packages {
		pkgs = append(pkgs, core.Package{Name: name})
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
	return pkgs, nil
}

var errWrite = errors.New("disk full")

// fakeConfig is an in-memory build configuration
type fakeConfig struct {
	name     string
	noTools  bool
	slots    map[core.FlagCategory][]string
	attrs    map[string]string
	sets     int
	saves    int
	reindex  int
	failAttr bool
	failSave bool
}

func newFakeConfig(name string) *fakeConfig {
	return &fakeConfig{
		name:  name,
		slots: make(map[core.FlagCategory][]string),
		attrs: make(map[string]string),
	}
}

func (c *fakeConfig) Name() string   { return c.name }
func (c *fakeConfig) HasTools() bool { return !c.noTools }

func (c *fakeConfig) Options(category core.FlagCategory) ([]string, error) {
	return append([]string(nil), c.slots[category]...), nil
}

func (c *fakeConfig) SetOptions(category core.FlagCategory, values []string) error {
	c.sets++
	c.slots[category] = append([]string(nil), values...)
	return nil
}

func (c *fakeConfig) SaveBuildInfo() error {
	c.saves++
	if c.failSave {
		return errWrite
	}
	return nil
}

func (c *fakeConfig) RequestReindex() error {
	c.reindex++
	return nil
}

func (c *fakeConfig) Attribute(name string) (string, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

func (c *fakeConfig) SetAttribute(name, value string) error {
	if c.failAttr {
		return fmt.Errorf("%w: %v", core.ErrStorageWrite, errWrite)
	}
	c.attrs[name] = value
	return nil
}

func (c *fakeConfig) Names() []string {
	names := make([]string, 0, len(c.attrs))
	for name := range c.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
