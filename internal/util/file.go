package util

import "os"

// EnsureDir creates a directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
