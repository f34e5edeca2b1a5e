// internal/cli/use.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [configuration]",
	Short: "Make a build configuration the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

var reindexedCmd = &cobra.Command{
	Use:   "reindexed",
	Short: "Clear a pending index rebuild request",
	Long:  `Mark the index of the build configuration as rebuilt, clearing the request left by the last check.`,
	Args:  cobra.NoArgs,
	RunE:  runReindexed,
}

func runUse(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	if err := m.Use(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Active configuration: %s\n", args[0])
	return nil
}

func runReindexed(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	if err := m.MarkReindexed(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Index rebuild request cleared.")
	return nil
}
