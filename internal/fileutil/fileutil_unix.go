//go:build !windows

package fileutil

import "os"

// MkdirPrivate creates a directory tree with owner-only permissions (0700).
func MkdirPrivate(path string) error {
	return os.MkdirAll(path, 0700)
}

func restrict(f *os.File) error {
	return f.Chmod(0600)
}
