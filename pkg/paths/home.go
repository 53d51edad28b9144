package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/sweep/pkg/errors"
)

// HomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func HomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrNotFound, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the user's home directory. Flag values
// such as --dir=~/Downloads reach sweep unexpanded by the shell.
func ExpandHome(path string) (string, error) {
	if path != "~" && (len(path) < 2 || path[0] != '~' || (path[1] != '/' && path[1] != filepath.Separator)) {
		return path, nil
	}

	home, err := HomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", path)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
