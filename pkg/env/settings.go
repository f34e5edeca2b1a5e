package env

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/mstoykov/envconfig"
)

const (
	// PkgConfigPathVar lists extra .pc search directories
	PkgConfigPathVar = "PKG_CONFIG_PATH"
	// PkgConfigLibDirVar replaces the default .pc search directory
	PkgConfigLibDirVar = "PKG_CONFIG_LIBDIR"
)

// Settings holds the environment overrides understood by pkgflags
type Settings struct {
	PkgConfigPath   string `envconfig:"PKG_CONFIG_PATH"`
	PkgConfigLibDir string `envconfig:"PKG_CONFIG_LIBDIR"`
	PkgConfigDir    string `envconfig:"PKGFLAGS_PKG_CONFIG_DIR"`
	Project         string `envconfig:"PKGFLAGS_PROJECT"`
	Debug           bool   `envconfig:"PKGFLAGS_DEBUG"`
}

// FromEnviron reads Settings through lookup (usually os.LookupEnv)
func FromEnviron(lookup func(key string) (string, bool)) (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s, lookup); err != nil {
		return Settings{}, fmt.Errorf("reading environment: %w", err)
	}
	return s, nil
}

// Apply overrides cfg with every value set in the environment
func (s Settings) Apply(cfg *core.Config) {
	if s.PkgConfigPath != "" {
		cfg.PkgConfigPath = SplitPath(s.PkgConfigPath)
	}
	if s.PkgConfigLibDir != "" {
		cfg.PkgConfigLibDir = s.PkgConfigLibDir
	}
	if s.PkgConfigDir != "" {
		cfg.PkgConfigDir = s.PkgConfigDir
	}
	if s.Project != "" {
		cfg.Project = s.Project
	}
	if s.Debug {
		cfg.Debug = true
	}
}

// SplitPath splits a PKG_CONFIG_PATH value, dropping empty entries
func SplitPath(value string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(value) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Environ returns base with the pkg-config variables from cfg set.
// Variables cfg leaves empty are passed through from base untouched.
func Environ(base []string, cfg *core.Config) []string {
	set := make(map[string]string)
	if len(cfg.PkgConfigPath) > 0 {
		set[PkgConfigPathVar] = strings.Join(cfg.PkgConfigPath, string(filepath.ListSeparator))
	}
	if cfg.PkgConfigLibDir != "" {
		set[PkgConfigLibDirVar] = cfg.PkgConfigLibDir
	}

	out := make([]string, 0, len(base)+len(set))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := set[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	for _, key := range []string{PkgConfigPathVar, PkgConfigLibDirVar} {
		if v, ok := set[key]; ok {
			out = append(out, key+"="+v)
		}
	}
	return out
}
