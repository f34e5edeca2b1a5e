/*
Package env builds the environment pkg-config runs in.

It handles:
  - Reading PKG_CONFIG_PATH, PKG_CONFIG_LIBDIR and pkgflags overrides from the process environment
  - Merging them over the YAML configuration
  - Producing the environment block handed to the pkg-config subprocess
  - Checking whether include and library search paths exist before they are added

Basic Usage:

	s, err := env.FromEnviron(os.LookupEnv)
	if err != nil {
		return err
	}
	s.Apply(cfg)

	environ := env.Environ(os.Environ(), cfg)
	exists := env.PathExists(afero.NewOsFs())

PKG_CONFIG_PATH is a colon-separated (on Windows, semicolon-separated) list of
directories to search for .pc files. PKG_CONFIG_LIBDIR replaces the default
search directory.
*/
package env
