package fsutil

import "path/filepath"

// normalizePath collapses redundant separators and "." and ".." elements.
func normalizePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	return filepath.Clean(path), nil
}
