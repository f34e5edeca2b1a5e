// internal/cli/init.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	initCompiler string
	initLinker   string
)

var initCmd = &cobra.Command{
	Use:   "init [configuration...]",
	Short: "Create a project file",
	Long: `Create the project file with the given build configurations (Debug and
Release by default). A configuration without a compiler or linker is not
managed and toggling packages in it changes nothing.

Examples:
  pkgflags init
  pkgflags init Debug Release Profile --compiler clang --linker lld`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initCompiler, "compiler", "gcc", "compiler tool of the new configurations")
	initCmd.Flags().StringVar(&initLinker, "linker", "ld", "linker tool of the new configurations")
}

func runInit(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	p, err := m.Init(initCompiler, initLinker, args...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s with configurations: %s (active: %s)\n",
		p.Path(), joinOrNone(p.Names()), p.Active())
	return nil
}
