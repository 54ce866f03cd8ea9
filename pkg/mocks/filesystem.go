package mocks

import (
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/user/designlibre/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
// Directory listings are scripted with SetDir, which allows listings that a
// real filesystem would never produce (duplicates, odd names).
type FileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	entries map[string][]fs.DirEntry
	dirErrs map[string]error

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	ReadDirFunc   func(path string) ([]fs.DirEntry, error)
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:   make(map[string][]byte),
		entries: make(map[string][]fs.DirEntry),
		dirErrs: make(map[string]error),
	}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *FileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.dirErrs[path]; ok {
		return nil, err
	}
	if entries, ok := m.entries[path]; ok {
		return append([]fs.DirEntry(nil), entries...), nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// SetDir scripts the listing returned by ReadDir for path. Names ending in
// "/" are reported as sub-directories.
func (m *FileSystem) SetDir(path string, names ...string) {
	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		if n := len(name); n > 0 && name[n-1] == '/' {
			entries = append(entries, DirEntry{EntryName: name[:n-1], Dir: true})
			continue
		}
		entries = append(entries, DirEntry{EntryName: name})
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = entries
}

// SetDirError makes ReadDir fail for path with err.
func (m *FileSystem) SetDirError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirErrs[path] = err
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

// DirEntry is a scripted fs.DirEntry.
type DirEntry struct {
	EntryName string
	Dir       bool
}

func (d DirEntry) Name() string { return d.EntryName }
func (d DirEntry) IsDir() bool  { return d.Dir }

func (d DirEntry) Type() fs.FileMode {
	if d.Dir {
		return fs.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (fs.FileInfo, error) {
	return fileInfo{d}, nil
}

type fileInfo struct{ d DirEntry }

func (i fileInfo) Name() string       { return i.d.EntryName }
func (i fileInfo) Size() int64        { return 0 }
func (i fileInfo) Mode() fs.FileMode  { return i.d.Type() | 0644 }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.d.Dir }
func (i fileInfo) Sys() interface{}   { return nil }

// ErrPermission returns a permission error for path.
func ErrPermission(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: os.ErrPermission}
}

var (
	_ ports.FileSystem = (*FileSystem)(nil)
	_ fs.DirEntry      = DirEntry{}
)
