// internal/cli/root.go
package cli

import (
	"os"

	"github.com/arc-language/pkgflags"
	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/env"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	projectFile   string
	configuration string
	pkgConfigDir  string
	checkPaths    bool
	persistList   bool
	debug         bool
	config        *core.Config
	logger        *logrus.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pkgflags",
	Short: "pkg-config flags for build configurations",
	Long: `pkgflags - pkg-config integration for build configurations

Check pkg-config packages for a build configuration and pkgflags keeps its
include paths, library paths, libraries and other flags in sync with them.
A flag stays as long as any checked package still needs it.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pkgflags/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectFile, "project", "", "project file holding the build configurations")
	rootCmd.PersistentFlags().StringVarP(&configuration, "configuration", "c", "", "build configuration to manage (default is the project's active one)")
	rootCmd.PersistentFlags().StringVar(&pkgConfigDir, "pkg-config-dir", "", "directory holding the pkg-config binary")
	rootCmd.PersistentFlags().BoolVar(&checkPaths, "check-paths", false, "skip include and library paths that do not exist")
	rootCmd.PersistentFlags().BoolVar(&persistList, "persist-listing", false, "store an unchecked entry for every package pkg-config lists")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(whyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(reindexedCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig layers defaults, the config file, the environment and flags
func initConfig(cmd *cobra.Command, args []string) error {
	logger = logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		logger.WithError(err).Warn("Error loading config, using defaults")
		config = core.DefaultConfig()
	}

	settings, err := env.FromEnviron(os.LookupEnv)
	if err != nil {
		return err
	}
	settings.Apply(config)

	// Override config with flags
	if projectFile != "" {
		config.Project = projectFile
	}
	if configuration != "" {
		config.Configuration = configuration
	}
	if pkgConfigDir != "" {
		config.PkgConfigDir = pkgConfigDir
	}
	if checkPaths {
		config.CheckPaths = true
	}
	if persistList {
		config.PersistListing = true
	}
	if debug {
		config.Debug = true
	}

	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func newManager() (*pkgflags.Manager, error) {
	return pkgflags.NewManager(config, &pkgflags.Options{Logger: logger})
}
