// Package billyfs provides a filesystem implementation backed by go-billy.
//
// It serves two purposes: confining design-file access to a project root
// (osfs chroot) and providing an in-memory filesystem for tests (memfs).
package billyfs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/user/designlibre/pkg/ports"
)

// FileSystem implements ports.FileSystem on top of a billy.Filesystem.
type FileSystem struct {
	bfs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(bfs billy.Filesystem) *FileSystem {
	return &FileSystem{bfs: bfs}
}

// NewRooted creates a filesystem confined to root. Paths are resolved
// relative to root and cannot escape it.
func NewRooted(root string) *FileSystem {
	return New(osfs.New(root, osfs.WithBoundOS()))
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FileSystem {
	return New(memfs.New())
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FileSystem) Unwrap() billy.Filesystem {
	return f.bfs
}

func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// ReadFile reads the entire contents of a file.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	file, err := f.bfs.Open(normalize(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// WriteFile truncates or creates the file and writes data.
// billy creates parent directories on O_CREATE, so their presence is
// checked first to keep the os semantics.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	path = normalize(path)

	if dir := filepath.ToSlash(filepath.Dir(path)); dir != "." && dir != "/" {
		info, err := f.bfs.Stat(dir)
		if err != nil {
			return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
		}
		if !info.IsDir() {
			return &iofs.PathError{Op: "open", Path: path, Err: errNotDir}
		}
	}

	file, err := f.bfs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// ReadDir lists the entries of a directory.
func (f *FileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(path))
	if err != nil {
		return nil, err
	}
	entries := make([]iofs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = iofs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
