// File: filex.go
// Title: Core File Utilities
// Description: Implements file checks, directory creation and atomic
//              writes used by the diagram codec, config lookup and the
//              history database.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-06-14 v0.2.0: Reduced to IsFile, EnsureDir, WriteAtomic and FirstExisting

package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ===============================
// File Existence and Basic Info
// ===============================

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FirstExisting returns the first of paths that names a regular file, or "".
func FirstExisting(paths ...string) string {
	for _, p := range paths {
		if IsFile(p) {
			return p
		}
	}
	return ""
}

// ===============================
// Directory and Writing Operations
// ===============================

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial file. On failure the
// existing file at path is left untouched.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
