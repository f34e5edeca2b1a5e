// pkg/project/configuration.go
package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arc-language/pkgflags/pkg/core"
)

// Configuration is one build configuration of a project. It holds the
// option slots pkgflags manages and the "packages" storage block.
type Configuration struct {
	project *Project
	name    string
}

var _ core.Configuration = (*Configuration)(nil)

func (c *Configuration) data() *ConfigurationData {
	return c.project.data.Configurations[c.name]
}

// Name returns the configuration name
func (c *Configuration) Name() string {
	return c.name
}

// HasTools reports whether a compiler and a linker are configured
func (c *Configuration) HasTools() bool {
	d := c.data()
	return d != nil && d.Compiler != "" && d.Linker != ""
}

// Compiler returns the compiler tool id
func (c *Configuration) Compiler() string {
	if d := c.data(); d != nil {
		return d.Compiler
	}
	return ""
}

// Linker returns the linker tool id
func (c *Configuration) Linker() string {
	if d := c.data(); d != nil {
		return d.Linker
	}
	return ""
}

// ReindexPending reports whether an index rebuild was requested and not yet cleared
func (c *Configuration) ReindexPending() bool {
	d := c.data()
	return d != nil && d.ReindexPending
}

// BuildInfoSaves returns how many times the build info was saved
func (c *Configuration) BuildInfoSaves() int {
	if d := c.data(); d != nil {
		return d.BuildInfoSaves
	}
	return 0
}

// Options returns the values of the slot backing category
func (c *Configuration) Options(category core.FlagCategory) ([]string, error) {
	d := c.data()
	if d == nil {
		return nil, c.missing("options")
	}

	switch category {
	case core.IncludePath:
		return append([]string(nil), d.IncludePaths...), nil
	case core.LibraryPath:
		return append([]string(nil), d.LibraryPaths...), nil
	case core.LibraryName:
		return append([]string(nil), d.Libraries...), nil
	case core.OtherFlag:
		return strings.Fields(d.OtherFlags), nil
	default:
		return nil, fmt.Errorf("project: unknown flag category %d", int(category))
	}
}

// SetOptions replaces the values of the slot backing category
func (c *Configuration) SetOptions(category core.FlagCategory, values []string) error {
	d := c.data()
	if d == nil {
		return c.missing("set options")
	}

	values = append([]string(nil), values...)
	switch category {
	case core.IncludePath:
		d.IncludePaths = values
	case core.LibraryPath:
		d.LibraryPaths = values
	case core.LibraryName:
		d.Libraries = values
	case core.OtherFlag:
		d.OtherFlags = strings.Join(values, " ")
	default:
		return fmt.Errorf("project: unknown flag category %d", int(category))
	}
	return nil
}

// SaveBuildInfo writes the project file
func (c *Configuration) SaveBuildInfo() error {
	d := c.data()
	if d == nil {
		return c.missing("save build info")
	}
	d.BuildInfoSaves++
	if err := c.project.Save(); err != nil {
		return &core.Error{Op: "save build info", Err: fmt.Errorf("%w: %v", core.ErrStorageWrite, err)}
	}
	return nil
}

// RequestReindex marks the configuration as needing an index rebuild
func (c *Configuration) RequestReindex() error {
	d := c.data()
	if d == nil {
		return c.missing("request reindex")
	}
	d.ReindexPending = true
	if err := c.project.Save(); err != nil {
		return &core.Error{Op: "request reindex", Err: fmt.Errorf("%w: %v", core.ErrStorageWrite, err)}
	}
	return nil
}

// ClearReindex resets the pending index rebuild flag
func (c *Configuration) ClearReindex() {
	if d := c.data(); d != nil {
		d.ReindexPending = false
	}
}

// Attribute returns the stored value for a package name
func (c *Configuration) Attribute(name string) (string, bool) {
	d := c.data()
	if d == nil {
		return "", false
	}
	v, ok := d.Storage.Packages[EncodeKey(name)]
	return v, ok
}

// SetAttribute stores a value for a package name
func (c *Configuration) SetAttribute(name, value string) error {
	if name == "" {
		return &core.Error{Op: "store", Err: fmt.Errorf("%w: %v", core.ErrStorageWrite, core.ErrInvalidPackage)}
	}
	d := c.data()
	if d == nil {
		return c.missing("store")
	}
	if d.Storage.Packages == nil {
		d.Storage.Packages = make(map[string]string)
	}
	d.Storage.Packages[EncodeKey(name)] = value
	return nil
}

// Names returns the package names with a stored attribute, sorted.
// Keys that do not decode are skipped.
func (c *Configuration) Names() []string {
	d := c.data()
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Storage.Packages))
	for key := range d.Storage.Packages {
		name, err := DecodeKey(key)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Configuration) missing(op string) error {
	return &core.Error{Op: op, Err: fmt.Errorf("%w: %q", core.ErrUnknownConfiguration, c.name)}
}
