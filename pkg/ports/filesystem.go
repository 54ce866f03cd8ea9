// Package ports defines interfaces for external dependencies.
package ports

import "io/fs"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	// The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// ReadDir lists the entries of a directory in the order the
	// underlying filesystem reports them.
	ReadDir(path string) ([]fs.DirEntry, error)
}
