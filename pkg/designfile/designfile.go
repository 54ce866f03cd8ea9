// Package designfile reads and writes design documents as whole text files.
package designfile

import (
	"unicode/utf8"

	"github.com/user/designlibre/pkg/ports"
)

// DesignFile is the result of a successful read. Path is echoed exactly as
// requested, never canonicalised.
type DesignFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Service performs single, unretried file operations.
type Service struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewService creates a Service on top of the given filesystem.
func NewService(fs ports.FileSystem, logger ports.Logger) *Service {
	return &Service{
		fs:     fs,
		logger: logger.WithComponent("designfile"),
	}
}

// Read returns the full text content of the file at path.
func (s *Service) Read(path string) (DesignFile, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return DesignFile{}, newIoError(OpRead, path, err)
	}
	if !utf8.Valid(data) {
		return DesignFile{}, newIoError(OpRead, path, ErrNotText)
	}

	s.logger.Debug("Read %d bytes from %s", len(data), path)
	return DesignFile{Path: path, Content: string(data)}, nil
}

// Write replaces the file at path with content, creating it if absent.
// The parent directory must exist. Nothing is staged or synced, so a crash
// mid-write can leave a partial file.
func (s *Service) Write(path, content string) error {
	if err := s.fs.WriteFile(path, []byte(content)); err != nil {
		return newIoError(OpWrite, path, err)
	}

	s.logger.Debug("Wrote %d bytes to %s", len(content), path)
	return nil
}
