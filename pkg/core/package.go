// pkg/core/package.go
package core

import (
	"sort"
	"strings"
)

// Package represents one entry of the pkg-config registry
type Package struct {
	Name        string // Package name as listed by pkg-config (e.g. "gtk+-2.0")
	Description string // One-line description
}

// FlagCategory selects one kind of build option managed by pkgflags
type FlagCategory int

const (
	// IncludePath maps to the compiler's include paths option
	IncludePath FlagCategory = iota
	// LibraryPath maps to the linker's library search paths option
	LibraryPath
	// LibraryName maps to the linker's libraries option
	LibraryName
	// OtherFlag maps to the compiler's free-form "other flags" option
	OtherFlag
)

// AllCategories lists every category in the order slots are reconciled
var AllCategories = []FlagCategory{
	IncludePath,
	LibraryPath,
	LibraryName,
	OtherFlag,
}

// String returns the category name used in logs and config files
func (c FlagCategory) String() string {
	switch c {
	case IncludePath:
		return "include_paths"
	case LibraryPath:
		return "library_paths"
	case LibraryName:
		return "libraries"
	case OtherFlag:
		return "other_flags"
	default:
		return "unknown"
	}
}

// IsPath reports whether values of this category are filesystem paths.
// Paths compare case-insensitively, names and flags do not.
func (c FlagCategory) IsPath() bool {
	return c == IncludePath || c == LibraryPath
}

// Equal compares two tokens of this category
func (c FlagCategory) Equal(a, b string) bool {
	if c.IsPath() {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Contains reports whether values holds a token equal to v under this category's comparison
func (c FlagCategory) Contains(values []string, v string) bool {
	for _, existing := range values {
		if c.Equal(existing, v) {
			return true
		}
	}
	return false
}

// PackageSet is the set of checked packages of one build configuration
type PackageSet map[string]struct{}

// NewPackageSet creates a set holding the given names
func NewPackageSet(names ...string) PackageSet {
	s := make(PackageSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set
func (s PackageSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts names into the set
func (s PackageSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Remove deletes names from the set
func (s PackageSet) Remove(names ...string) {
	for _, name := range names {
		delete(s, name)
	}
}

// Clone returns an independent copy
func (s PackageSet) Clone() PackageSet {
	c := make(PackageSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Minus returns the names of s that are not in other, sorted
func (s PackageSet) Minus(other PackageSet) []string {
	var out []string
	for name := range s {
		if !other.Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Sorted returns the names in lexical order
func (s PackageSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same names
func (s PackageSet) Equal(other PackageSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}
