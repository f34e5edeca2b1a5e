// parser.go
package pkgconfig

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/arc-language/pkgflags/pkg/core"
)

// Whitespace runs are collapsed everywhere, so repeated spaces in pkg-config
// output never produce empty tokens.

// ParseIncludePaths returns the paths of the -I tokens of a --cflags line
func ParseIncludePaths(line string) []string {
	return stripPrefixed(line, IncludePrefix)
}

// ParseLibraryPaths returns the paths of the -L tokens of a --libs-only-L line
func ParseLibraryPaths(line string) []string {
	return stripPrefixed(line, LibraryPathPrefix)
}

// ParseLibraryNames returns the names of the -l tokens of a --libs-only-l line
func ParseLibraryNames(line string) []string {
	return stripPrefixed(line, LibraryNamePrefix)
}

// ParseOtherFlags returns the tokens of a --cflags line that are not include
// paths, starting at the first dash-prefixed token. Defines, -pthread and
// similar compiler flags end up here.
func ParseOtherFlags(line string) []string {
	fields := strings.Fields(line)

	start := -1
	for i, tok := range fields {
		if strings.HasPrefix(tok, "-") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var flags []string
	for _, tok := range fields[start:] {
		if strings.HasPrefix(tok, IncludePrefix) {
			continue
		}
		flags = append(flags, tok)
	}
	return flags
}

// Parse dispatches line to the parser for category
func Parse(category core.FlagCategory, line string) []string {
	switch category {
	case core.IncludePath:
		return ParseIncludePaths(line)
	case core.LibraryPath:
		return ParseLibraryPaths(line)
	case core.LibraryName:
		return ParseLibraryNames(line)
	case core.OtherFlag:
		return ParseOtherFlags(line)
	default:
		return nil
	}
}

// SplitPackageListingLine splits a --list-all line at its first whitespace
// run into the package name and its description
func SplitPackageListingLine(line string) (name, description string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

// ParseListing parses the complete output of pkg-config --list-all
func ParseListing(r io.Reader) ([]core.Package, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var packages []core.Package
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, desc := SplitPackageListingLine(line)
		packages = append(packages, core.Package{Name: name, Description: desc})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning package listing: %w", err)
	}

	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

// stripPrefixed keeps the tokens starting with prefix, without the prefix.
// A bare prefix token carries no value and is skipped.
func stripPrefixed(line, prefix string) []string {
	var values []string
	for _, tok := range strings.Fields(line) {
		if !strings.HasPrefix(tok, prefix) {
			continue
		}
		if v := tok[len(prefix):]; v != "" {
			values = append(values, v)
		}
	}
	return values
}
