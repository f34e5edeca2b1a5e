// internal/cli/info.go
package cli

import (
	"context"
	"fmt"

	"github.com/arc-language/pkgflags"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show the flags of a package",
	Long:  `Display the include paths, library paths, libraries and other flags pkg-config reports for a package.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var infoRaw bool

func init() {
	infoCmd.Flags().BoolVar(&infoRaw, "raw", false, "print the unparsed --cflags --libs line")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()
	pkg := args[0]

	m, err := newManager()
	if err != nil {
		return err
	}

	flags, err := m.Info(ctx, pkg)
	if err != nil {
		return fmt.Errorf("getting package info: %w", err)
	}

	if infoRaw {
		raw, err := m.Raw(ctx, pkg)
		if err != nil {
			return fmt.Errorf("getting package flags: %w", err)
		}
		fmt.Fprintln(out, raw)
		return nil
	}

	fmt.Fprintf(out, "Package: %s\n", flags.Package)
	if v, err := m.Version(ctx, pkg); err == nil && v != "" {
		fmt.Fprintf(out, "Version: %s\n", v)
	}

	printSlots(out, pkgflags.Slots{
		pkgflags.IncludePath: flags.IncludePaths,
		pkgflags.LibraryPath: flags.LibraryPaths,
		pkgflags.LibraryName: flags.Libraries,
		pkgflags.OtherFlag:   flags.OtherFlags,
	})
	return nil
}
