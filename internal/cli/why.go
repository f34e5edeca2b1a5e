// internal/cli/why.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
	"github.com/spf13/cobra"
)

var whyCategory string

var whyCmd = &cobra.Command{
	Use:   "why [flag]",
	Short: "Show which checked packages need a flag",
	Long: `Show which checked packages emit a flag. A flag no checked package needs is
removed when the packages that added it are unchecked.

Examples:
  pkgflags why -- -I/usr/include/glib-2.0
  pkgflags why -- -lm
  pkgflags why /usr/lib --category library_paths`,
	Args: cobra.ExactArgs(1),
	RunE: runWhy,
}

func init() {
	whyCmd.Flags().StringVar(&whyCategory, "category", "", "include_paths, library_paths, libraries or other_flags (detected from the prefix by default)")
}

func runWhy(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	token, category, err := splitToken(args[0], whyCategory)
	if err != nil {
		return err
	}

	m, err := newManager()
	if err != nil {
		return err
	}

	owners, warnings, err := m.Why(ctx, token, category)
	if err != nil {
		return err
	}
	printWarnings(cmd.ErrOrStderr(), warnings)

	if len(owners) == 0 {
		fmt.Fprintf(out, "%s %s: not needed by any checked package\n", category, token)
		return nil
	}
	fmt.Fprintf(out, "%s %s: %s\n", category, token, strings.Join(owners, " "))
	return nil
}

// splitToken returns the bare value of a flag and its category. An explicit
// category takes the value as given.
func splitToken(arg, name string) (string, core.FlagCategory, error) {
	if name != "" {
		for _, c := range core.AllCategories {
			if c.String() == name {
				return arg, c, nil
			}
		}
		return "", 0, fmt.Errorf("unknown category %q", name)
	}

	switch {
	case strings.HasPrefix(arg, pkgconfig.IncludePrefix) && len(arg) > len(pkgconfig.IncludePrefix):
		return arg[len(pkgconfig.IncludePrefix):], core.IncludePath, nil
	case strings.HasPrefix(arg, pkgconfig.LibraryPathPrefix) && len(arg) > len(pkgconfig.LibraryPathPrefix):
		return arg[len(pkgconfig.LibraryPathPrefix):], core.LibraryPath, nil
	case strings.HasPrefix(arg, pkgconfig.LibraryNamePrefix) && len(arg) > len(pkgconfig.LibraryNamePrefix):
		return arg[len(pkgconfig.LibraryNamePrefix):], core.LibraryName, nil
	case strings.HasPrefix(arg, "-"):
		return arg, core.OtherFlag, nil
	default:
		return "", 0, fmt.Errorf("cannot tell the category of %q, pass --category", arg)
	}
}
