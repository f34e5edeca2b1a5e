// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pkgflags version %s\n", version)
		fmt.Fprintln(out, "pkg-config integration for build configurations")
		fmt.Fprintln(out, "https://github.com/arc-language/pkgflags")
	},
}
