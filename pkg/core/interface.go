// pkg/core/interface.go
package core

import "context"

// Runner runs pkg-config on behalf of the reconciler
type Runner interface {
	// Query runs pkg-config with the given flag mode for one package and
	// returns the first line of its output ("" when it printed nothing)
	Query(ctx context.Context, mode string, pkg string) (string, error)

	// List returns every package pkg-config knows about
	List(ctx context.Context) ([]Package, error)
}

// BuildConfig is one build configuration whose tool options pkgflags manages
type BuildConfig interface {
	// Name returns the configuration name (e.g. "Debug")
	Name() string

	// HasTools reports whether both a compiler and a linker tool are present.
	// Configurations without them are not managed builds and are left alone.
	HasTools() bool

	// Options returns the current values of the slot backing category
	Options(category FlagCategory) ([]string, error)

	// SetOptions replaces the values of the slot backing category
	SetOptions(category FlagCategory, values []string) error

	// SaveBuildInfo persists option changes so later builds see them
	SaveBuildInfo() error

	// RequestReindex asks for the symbol index to be rebuilt
	RequestReindex() error
}

// PackageStorage is the per-configuration "packages" storage block
type PackageStorage interface {
	// Attribute returns the stored value for a package name
	Attribute(name string) (string, bool)

	// SetAttribute stores a value for a package name
	SetAttribute(name, value string) error

	// Names returns every package name that has a stored attribute
	Names() []string
}

// Configuration combines the build options and the package storage of one configuration
type Configuration interface {
	BuildConfig
	PackageStorage
}
