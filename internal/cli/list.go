// internal/cli/list.go
package cli

import (
	"context"
	"fmt"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pkg-config packages",
	Long:  `List every package pkg-config knows about. Packages checked in the build configuration are marked with *.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	m, err := newManager()
	if err != nil {
		return err
	}

	pkgs, err := m.List(ctx)
	if err != nil {
		return fmt.Errorf("listing packages: %w", err)
	}

	// The listing works without a project, only the markers need one
	active, err := m.Active()
	if err != nil {
		logger.WithError(err).Debug("No build configuration, listing without checked state")
		active = core.NewPackageSet()
	}

	width := 0
	for _, p := range pkgs {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}

	for _, p := range pkgs {
		marker := " "
		if active.Has(p.Name) {
			marker = addedColor.Sprint("*")
		}
		fmt.Fprintf(out, "%s %-*s  %s\n", marker, width, p.Name, p.Description)
	}

	if len(active) > 0 {
		fmt.Fprintf(out, "\n* = checked\n")
	}
	return nil
}
