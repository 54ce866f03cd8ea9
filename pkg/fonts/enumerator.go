// Package fonts discovers installed font files and works with them.
package fonts

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/user/designlibre/pkg/ports"
)

// Suffixes are the recognised font-file name suffixes.
var Suffixes = []string{".ttf", ".otf", ".ttc"}

// ErrFontNotFound is returned by Locate when no directory holds the font.
var ErrFontNotFound = errors.New("font not found")

// FontList is a sorted, duplicate-free list of font filenames.
type FontList []string

// SkippedDir records a directory the scan could not read.
type SkippedDir struct {
	Dir string
	Err error
}

// ScanResult is the outcome of a single scan.
type ScanResult struct {
	Fonts   FontList
	Skipped []SkippedDir
}

// Enumerator scans a provider's directories for font files. It holds no
// state between calls.
type Enumerator struct {
	fs         ports.FileSystem
	provider   ports.FontDirectoryProvider
	onDirError DirErrorPolicy
	logger     ports.Logger
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithDirErrorPolicy replaces the default SkipSilently policy.
func WithDirErrorPolicy(p DirErrorPolicy) Option {
	return func(e *Enumerator) {
		if p != nil {
			e.onDirError = p
		}
	}
}

// NewEnumerator creates an Enumerator.
func NewEnumerator(fs ports.FileSystem, provider ports.FontDirectoryProvider, logger ports.Logger, opts ...Option) *Enumerator {
	e := &Enumerator{
		fs:         fs,
		provider:   provider,
		onDirError: SkipSilently,
		logger:     logger.WithComponent("fonts"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List returns the installed font filenames. The error is always nil.
func (e *Enumerator) List() (FontList, error) {
	return e.Scan().Fonts, nil
}

// Scan walks every directory once and reports what it found and skipped.
func (e *Enumerator) Scan() ScanResult {
	var (
		names  []string
		result ScanResult
	)
	filter := e.provider.Filter()

	for _, dir := range e.provider.Directories() {
		e.walk(dir.Path, dir.Recursive, func(_ string, name string) {
			if matches(name, filter) {
				names = append(names, name)
			}
		}, &result)
	}

	result.Fonts = normalize(names)
	e.logger.Debug("Found %d fonts in %d directories (%d skipped)",
		len(result.Fonts), len(e.provider.Directories()), len(result.Skipped))
	return result
}

// Locate returns the full path of the first file named name in scan order.
func (e *Enumerator) Locate(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", &fs.PathError{Op: "locate", Path: name, Err: ErrFontNotFound}
	}

	filter := e.provider.Filter()
	var found string
	var discard ScanResult
	for _, dir := range e.provider.Directories() {
		e.walk(dir.Path, dir.Recursive, func(path, entry string) {
			if found == "" && entry == name && matches(entry, filter) {
				found = path
			}
		}, &discard)
		if found != "" {
			return found, nil
		}
	}
	return "", &fs.PathError{Op: "locate", Path: name, Err: ErrFontNotFound}
}

// walk calls visit for every non-directory entry under dir whose name is
// valid UTF-8. Unreadable directories go through the error policy.
func (e *Enumerator) walk(dir string, recursive bool, visit func(path, name string), result *ScanResult) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		result.Skipped = append(result.Skipped, SkippedDir{Dir: dir, Err: err})
		e.onDirError(dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if entry.IsDir() && recursive {
			e.walk(path, true, visit, result)
			continue
		}
		visit(path, name)
	}
}

func matches(name string, filter ports.FilterPolicy) bool {
	if filter == ports.IncludeAllEntries {
		return true
	}
	return HasFontSuffix(name)
}

// HasFontSuffix reports whether name ends in a recognised font suffix.
func HasFontSuffix(name string) bool {
	for _, s := range Suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// normalize sorts names ascending and removes exact duplicates.
func normalize(names []string) FontList {
	sort.Strings(names)
	out := make(FontList, 0, len(names))
	for i, n := range names {
		if i > 0 && n == names[i-1] {
			continue
		}
		out = append(out, n)
	}
	return out
}
