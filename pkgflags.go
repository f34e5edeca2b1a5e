// pkgflags.go
package pkgflags

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/env"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
	"github.com/arc-language/pkgflags/pkg/platform"
	"github.com/arc-language/pkgflags/pkg/project"
	"github.com/arc-language/pkgflags/pkg/reconcile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Re-export core types for convenience
type (
	Config         = core.Config
	Package        = core.Package
	PackageSet     = core.PackageSet
	FlagCategory   = core.FlagCategory
	Flags          = pkgconfig.Flags
	Result         = reconcile.Result
	Slots          = reconcile.Slots
	Event          = reconcile.Event
	PackageToggled = reconcile.PackageToggled
	BulkToggled    = reconcile.BulkToggled
	SetChecked     = reconcile.SetChecked
	// Configuration is a build configuration stored in the project file
	Configuration = project.Configuration
)

// Re-export flag categories
const (
	IncludePath = core.IncludePath
	LibraryPath = core.LibraryPath
	LibraryName = core.LibraryName
	OtherFlag   = core.OtherFlag
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options holds the collaborators of a Manager. Zero values select the
// real filesystem, the process environment and a discard logger.
type Options struct {
	Fs       afero.Fs
	Environ  []string
	Logger   logrus.FieldLogger
	Platform *platform.Platform
}

// Manager ties pkg-config, the project file and the reconciler together
// for one build configuration
type Manager struct {
	config     *core.Config
	fs         afero.Fs
	platform   *platform.Platform
	client     *pkgconfig.Client
	reconciler *reconcile.Reconciler
	logger     logrus.FieldLogger

	project *project.Project
	session *reconcile.Session
}

// NewManager creates a manager. The project file is opened on first use.
func NewManager(config *Config, opts *Options) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if opts == nil {
		opts = &Options{}
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		if config.Debug {
			l.SetLevel(logrus.DebugLevel)
		} else {
			l.SetOutput(io.Discard)
		}
		logger = l
	}

	plat := opts.Platform
	if plat == nil {
		var err error
		plat, err = platform.Detect()
		if err != nil {
			return nil, fmt.Errorf("detecting platform: %w", err)
		}
	}

	binary, err := platform.ResolvePkgConfig(plat, config.PkgConfigDir)
	if err != nil {
		logger.WithError(err).Warn("pkg-config is not available, queries will fail")
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	client := pkgconfig.NewClient(&pkgconfig.Config{
		Binary:  binary,
		Shell:   plat.Shell,
		Env:     env.Environ(environ, config),
		Timeout: config.Timeout,
		Debug:   config.Debug,
		Logger:  logger,
	})

	ropts := &reconcile.Options{Logger: logger, PersistListing: config.PersistListing}
	if config.CheckPaths {
		ropts.PathExists = env.PathExists(fs)
	}

	return &Manager{
		config:     config,
		fs:         fs,
		platform:   plat,
		client:     client,
		reconciler: reconcile.New(client, ropts),
		logger:     logger,
	}, nil
}

// Platform returns the detected platform
func (m *Manager) Platform() *platform.Platform {
	return m.platform
}

// List returns every package pkg-config knows about
func (m *Manager) List(ctx context.Context) ([]Package, error) {
	return m.client.List(ctx)
}

// Info returns the parsed flags of one package
func (m *Manager) Info(ctx context.Context, name string) (*Flags, error) {
	ok, err := m.client.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &core.Error{Op: "info", Package: name, Err: core.ErrPackageNotFound}
	}
	return m.client.Flags(ctx, name)
}

// Raw returns the unparsed --cflags --libs line of one package
func (m *Manager) Raw(ctx context.Context, name string) (string, error) {
	return m.client.Raw(ctx, name)
}

// Version returns the version pkg-config reports for a package
func (m *Manager) Version(ctx context.Context, name string) (string, error) {
	return m.client.Version(ctx, name)
}

// Init creates the project file with one configuration per name.
// Existing files are left untouched.
func (m *Manager) Init(compiler, linker string, names ...string) (*project.Project, error) {
	if ok, _ := afero.Exists(m.fs, m.config.Project); ok {
		return nil, fmt.Errorf("project %s already exists", m.config.Project)
	}
	if len(names) == 0 {
		names = []string{"Debug", "Release"}
	}

	p := project.New(m.fs, m.config.Project)
	for _, name := range names {
		if _, err := p.AddConfiguration(name, compiler, linker); err != nil {
			return nil, err
		}
	}
	if err := p.Save(); err != nil {
		return nil, err
	}

	m.project = p
	m.session = nil
	return p, nil
}

// Project opens the project file
func (m *Manager) Project() (*project.Project, error) {
	if m.project != nil {
		return m.project, nil
	}
	p, err := project.Load(m.fs, m.config.Project)
	if err != nil {
		return nil, err
	}
	m.project = p
	return p, nil
}

// Session returns the session of the configured build configuration
func (m *Manager) Session() (*reconcile.Session, error) {
	if m.session != nil {
		return m.session, nil
	}
	p, err := m.Project()
	if err != nil {
		return nil, err
	}
	cfg, err := p.Configuration(m.config.Configuration)
	if err != nil {
		return nil, err
	}

	m.logger.WithField("configuration", cfg.Name()).Debug("Opened build configuration")
	m.session = reconcile.NewSession(m.reconciler, cfg)
	return m.session, nil
}

// Use makes name the project's active configuration and saves the project
func (m *Manager) Use(name string) error {
	p, err := m.Project()
	if err != nil {
		return err
	}
	if err := p.SetActive(name); err != nil {
		return err
	}
	if err := p.Save(); err != nil {
		return err
	}
	m.session = nil
	return nil
}

// Configuration returns the managed build configuration
func (m *Manager) Configuration() (*Configuration, error) {
	s, err := m.Session()
	if err != nil {
		return nil, err
	}
	return s.Configuration().(*project.Configuration), nil
}

// Apply applies one event to the managed configuration
func (m *Manager) Apply(ctx context.Context, ev Event) (*Result, error) {
	s, err := m.Session()
	if err != nil {
		return nil, err
	}
	return s.Handle(ctx, ev)
}

// Check checks the named packages
func (m *Manager) Check(ctx context.Context, names ...string) (*Result, error) {
	return m.Apply(ctx, BulkToggled{Added: names})
}

// Uncheck unchecks the named packages
func (m *Manager) Uncheck(ctx context.Context, names ...string) (*Result, error) {
	return m.Apply(ctx, BulkToggled{Removed: names})
}

// Set makes names the complete checked set
func (m *Manager) Set(ctx context.Context, names ...string) (*Result, error) {
	return m.Apply(ctx, SetChecked{Names: names})
}

// Reset unchecks every package
func (m *Manager) Reset(ctx context.Context) (*Result, error) {
	return m.Apply(ctx, SetChecked{})
}

// Active returns the checked packages of the managed configuration
func (m *Manager) Active() (PackageSet, error) {
	s, err := m.Session()
	if err != nil {
		return nil, err
	}
	return s.Active(), nil
}

// Slots returns the current option slots of the managed configuration
func (m *Manager) Slots() (Slots, error) {
	cfg, err := m.Configuration()
	if err != nil {
		return nil, err
	}
	slots := Slots{}
	for _, category := range core.AllCategories {
		values, err := cfg.Options(category)
		if err != nil {
			return nil, err
		}
		slots[category] = values
	}
	return slots, nil
}

// Why returns the checked packages that emit token in category
func (m *Manager) Why(ctx context.Context, token string, category FlagCategory) ([]string, []string, error) {
	active, err := m.Active()
	if err != nil {
		return nil, nil, err
	}
	owners, res, err := m.reconciler.Owners(ctx, token, category, active)
	if err != nil {
		return nil, nil, err
	}
	return owners, res.Warnings, nil
}

// Resolve returns the union of the flags of every checked package
func (m *Manager) Resolve(ctx context.Context) (Slots, []string, error) {
	active, err := m.Active()
	if err != nil {
		return nil, nil, err
	}
	slots, res, err := m.reconciler.Resolve(ctx, active)
	if err != nil {
		return nil, nil, err
	}
	return slots, res.Warnings, nil
}

// MarkReindexed clears a pending index rebuild request
func (m *Manager) MarkReindexed() error {
	cfg, err := m.Configuration()
	if err != nil {
		return err
	}
	cfg.ClearReindex()
	p, err := m.Project()
	if err != nil {
		return err
	}
	return p.Save()
}
