package fileutil

import (
	"io/fs"
	"os"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// ReadRegularFile reads a regular file in full. No size cap is applied.
// A path that does not exist or names a directory yields an error
// matching errors.ErrNotFound.
func ReadRegularFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrNotFound, path)
		}
		return nil, errors.Wrapf(err, "checking %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(errors.ErrNotFound, "%s is not a regular file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return data, nil
}
