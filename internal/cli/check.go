// internal/cli/check.go
package cli

import (
	"context"

	"github.com/arc-language/pkgflags"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [package...]",
	Short: "Check packages for the build configuration",
	Long: `Add the flags of one or more packages to the build configuration.

Examples:
  pkgflags check gtk+-2.0
  pkgflags check glib-2.0 zlib -c Release`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, func(ctx context.Context, m *pkgflags.Manager) (*pkgflags.Result, error) {
			return m.Check(ctx, args...)
		})
	},
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck [package...]",
	Short: "Uncheck packages",
	Long: `Remove the flags of one or more packages from the build configuration.
Flags that another checked package still needs are kept.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, func(ctx context.Context, m *pkgflags.Manager) (*pkgflags.Result, error) {
			return m.Uncheck(ctx, args...)
		})
	},
}

var setCmd = &cobra.Command{
	Use:   "set [package...]",
	Short: "Replace the checked packages",
	Long:  `Make the given packages the complete set of checked packages. Without arguments every package is unchecked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, func(ctx context.Context, m *pkgflags.Manager) (*pkgflags.Result, error) {
			return m.Set(ctx, args...)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every package",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, func(ctx context.Context, m *pkgflags.Manager) (*pkgflags.Result, error) {
			return m.Reset(ctx)
		})
	},
}

func runToggle(cmd *cobra.Command, apply func(context.Context, *pkgflags.Manager) (*pkgflags.Result, error)) error {
	ctx := context.Background()

	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := apply(ctx, m)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	return nil
}
