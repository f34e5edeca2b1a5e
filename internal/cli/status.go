// internal/cli/status.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the checked packages and the managed options",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print the combined flags of the checked packages",
	Long:  `Query pkg-config for every checked package and print the union of their flags as one command line.`,
	Args:  cobra.NoArgs,
	RunE:  runFlags,
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	m, err := newManager()
	if err != nil {
		return err
	}

	cfg, err := m.Configuration()
	if err != nil {
		return err
	}
	active, err := m.Active()
	if err != nil {
		return err
	}
	slots, err := m.Slots()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration: %s\n", cfg.Name())
	if !cfg.HasTools() {
		warnColor.Fprintln(out, "Not a managed build: no compiler or linker configured")
	} else {
		fmt.Fprintf(out, "Tools: %s / %s\n", cfg.Compiler(), cfg.Linker())
	}
	fmt.Fprintf(out, "Checked: %s\n", joinOrNone(active.Sorted()))
	if cfg.ReindexPending() {
		fmt.Fprintln(out, "Index rebuild pending.")
	}
	fmt.Fprintln(out)
	printSlots(out, slots)
	return nil
}

func runFlags(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	m, err := newManager()
	if err != nil {
		return err
	}

	slots, warnings, err := m.Resolve(ctx)
	if err != nil {
		return err
	}
	printWarnings(cmd.ErrOrStderr(), warnings)

	var parts []string
	for _, v := range slots[core.IncludePath] {
		parts = append(parts, "-I"+v)
	}
	parts = append(parts, slots[core.OtherFlag]...)
	for _, v := range slots[core.LibraryPath] {
		parts = append(parts, "-L"+v)
	}
	for _, v := range slots[core.LibraryName] {
		parts = append(parts, "-l"+v)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}
