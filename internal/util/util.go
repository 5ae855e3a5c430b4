package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PathExists reports whether anything exists at loc, only returning an error for failures
// other than the path being absent
func PathExists(loc string) (bool, error) {
	if _, err := os.Stat(loc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func EnsureParentDir(loc string) error {
	dir := filepath.Dir(loc)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return fmt.Errorf("error creating %v: %w", dir, err)
	}
	return nil
}
