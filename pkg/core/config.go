// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultProjectFile is the build configuration store used when none is configured
const DefaultProjectFile = "pkgflags.toml"

// DefaultTimeout bounds a single pkg-config invocation
const DefaultTimeout = 10 * time.Second

// Config holds pkgflags configuration
type Config struct {
	PkgConfigDir    string        `yaml:"pkg_config_dir"`    // Directory holding a non-default pkg-config binary
	PkgConfigPath   []string      `yaml:"pkg_config_path"`   // Extra .pc search directories
	PkgConfigLibDir string        `yaml:"pkg_config_libdir"` // Replaces the default .pc search directory
	Project         string        `yaml:"project"`           // Build configuration store
	Configuration   string        `yaml:"configuration"`     // Build configuration to manage (project default if empty)
	Timeout         time.Duration `yaml:"timeout"`
	CheckPaths      bool          `yaml:"check_paths"`     // Skip include/library paths that do not exist
	PersistListing  bool          `yaml:"persist_listing"` // Store an unchecked entry for every listed package
	Debug           bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Project: DefaultProjectFile,
		Timeout: DefaultTimeout,
	}
}

// DefaultConfigPath returns $HOME/.config/pkgflags/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pkgflags", "config.yaml"), nil
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Project == "" {
		cfg.Project = DefaultProjectFile
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
