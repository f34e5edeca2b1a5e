package env

import (
	"github.com/spf13/afero"
)

// PathExists returns a predicate reporting whether a directory exists on fs.
// The reconciler uses it to skip include and library search paths that are
// missing, as a build would only warn about them.
func PathExists(fs afero.Fs) func(path string) bool {
	return func(path string) bool {
		if path == "" {
			return false
		}
		ok, err := afero.DirExists(fs, path)
		return err == nil && ok
	}
}
