// pkg/project/project.go
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/spf13/afero"
)

// PackagesBlock names the storage block holding checked package state
const PackagesBlock = "packages"

// File is the on-disk layout of a project file
type File struct {
	Active         string                        `toml:"active"`
	Configurations map[string]*ConfigurationData `toml:"configurations"`
}

// ConfigurationData is one [configurations.<name>] table
type ConfigurationData struct {
	Compiler     string   `toml:"compiler"`
	Linker       string   `toml:"linker"`
	IncludePaths []string `toml:"include_paths"`
	LibraryPaths []string `toml:"library_paths"`
	Libraries    []string `toml:"libraries"`
	// OtherFlags is a single space separated option, the way compilers take it
	OtherFlags     string  `toml:"other_flags"`
	BuildInfoSaves int     `toml:"build_info_saves"`
	ReindexPending bool    `toml:"reindex_pending"`
	Storage        Storage `toml:"storage"`
}

// Storage holds the configuration-scoped storage blocks
type Storage struct {
	Packages map[string]string `toml:"packages"`
}

// Project is a TOML file of build configurations
type Project struct {
	fs   afero.Fs
	path string
	data File
}

// New returns an empty project that will be written to path on Save
func New(fs afero.Fs, path string) *Project {
	return &Project{
		fs:   fs,
		path: path,
		data: File{Configurations: make(map[string]*ConfigurationData)},
	}
}

// Load reads the project file at path
func Load(fs afero.Fs, path string) (*Project, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("project: %s not found, run init first: %w", path, err)
		}
		return nil, fmt.Errorf("project: reading %s: %w", path, err)
	}

	p := New(fs, path)
	if _, err := toml.Decode(string(data), &p.data); err != nil {
		return nil, fmt.Errorf("project: failed to parse %s: %w", path, err)
	}
	if p.data.Configurations == nil {
		p.data.Configurations = make(map[string]*ConfigurationData)
	}
	for name, c := range p.data.Configurations {
		if c == nil {
			p.data.Configurations[name] = &ConfigurationData{}
		}
	}

	return p, nil
}

// Path returns the project file location
func (p *Project) Path() string {
	return p.path
}

// Save writes the project file
func (p *Project) Save() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p.data); err != nil {
		return fmt.Errorf("project: encoding: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("project: creating %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(p.fs, p.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("project: writing %s: %w", p.path, err)
	}
	return nil
}

// Names returns the configuration names, sorted
func (p *Project) Names() []string {
	names := make([]string, 0, len(p.data.Configurations))
	for name := range p.data.Configurations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Active returns the name of the default configuration
func (p *Project) Active() string {
	if p.data.Active != "" {
		return p.data.Active
	}
	if names := p.Names(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// SetActive makes name the default configuration
func (p *Project) SetActive(name string) error {
	if _, ok := p.data.Configurations[name]; !ok {
		return &core.Error{Op: "set active", Err: fmt.Errorf("%w: %s", core.ErrUnknownConfiguration, name)}
	}
	p.data.Active = name
	return nil
}

// AddConfiguration creates or replaces the named configuration.
// The first configuration added becomes the active one.
func (p *Project) AddConfiguration(name, compiler, linker string) (*Configuration, error) {
	if name == "" {
		return nil, &core.Error{Op: "add configuration", Err: fmt.Errorf("%w: empty name", core.ErrUnknownConfiguration)}
	}
	p.data.Configurations[name] = &ConfigurationData{
		Compiler: compiler,
		Linker:   linker,
	}
	if p.data.Active == "" {
		p.data.Active = name
	}
	return &Configuration{project: p, name: name}, nil
}

// Configuration returns the named configuration, or the active one for ""
func (p *Project) Configuration(name string) (*Configuration, error) {
	if name == "" {
		name = p.Active()
	}
	if _, ok := p.data.Configurations[name]; !ok {
		return nil, &core.Error{Op: "configuration", Err: fmt.Errorf("%w: %q", core.ErrUnknownConfiguration, name)}
	}
	return &Configuration{project: p, name: name}, nil
}
