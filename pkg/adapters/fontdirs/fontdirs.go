// Package fontdirs provides the per-platform font directory providers.
package fontdirs

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/user/designlibre/pkg/ports"
)

// Darwin lists the macOS system and user font directories.
type Darwin struct {
	// Home is the user's home directory. The user font directory is
	// skipped when it is empty.
	Home string
}

func (d Darwin) Platform() string { return "darwin" }

func (d Darwin) Directories() []ports.FontDirectory {
	dirs := []ports.FontDirectory{
		{Path: "/System/Library/Fonts"},
		{Path: "/Library/Fonts"},
	}
	if d.Home != "" {
		dirs = append(dirs, ports.FontDirectory{Path: filepath.Join(d.Home, "Library", "Fonts")})
	}
	return dirs
}

func (d Darwin) Filter() ports.FilterPolicy { return ports.FilterFontSuffixes }

// Linux lists the system-wide font directories. Fonts on Linux live in
// vendor sub-directories, so both roots are scanned recursively.
//
// Legacy reproduces the historical listing: top-level entries only, no
// suffix filtering.
type Linux struct {
	Legacy bool
}

func (l Linux) Platform() string { return "linux" }

func (l Linux) Directories() []ports.FontDirectory {
	return []ports.FontDirectory{
		{Path: "/usr/share/fonts", Recursive: !l.Legacy},
		{Path: "/usr/local/share/fonts", Recursive: !l.Legacy},
	}
}

func (l Linux) Filter() ports.FilterPolicy {
	if l.Legacy {
		return ports.IncludeAllEntries
	}
	return ports.FilterFontSuffixes
}

// Windows lists the system font directory.
type Windows struct{}

func (Windows) Platform() string { return "windows" }

func (Windows) Directories() []ports.FontDirectory {
	return []ports.FontDirectory{{Path: `C:\Windows\Fonts`}}
}

func (Windows) Filter() ports.FilterPolicy { return ports.FilterFontSuffixes }

// Static is a fixed directory list, used for unknown platforms,
// configured extra directories and tests.
type Static struct {
	Name   string
	Dirs   []ports.FontDirectory
	Policy ports.FilterPolicy
}

func (s Static) Platform() string { return s.Name }

func (s Static) Directories() []ports.FontDirectory {
	return append([]ports.FontDirectory(nil), s.Dirs...)
}

func (s Static) Filter() ports.FilterPolicy { return s.Policy }

// Options tweak provider detection.
type Options struct {
	LegacyLinuxListing bool
}

// Detect returns the provider for goos. Unknown platforms get an empty
// provider, which enumerates to an empty list.
func Detect(goos string, getenv func(string) string, opts Options) ports.FontDirectoryProvider {
	switch goos {
	case "darwin":
		return Darwin{Home: getenv("HOME")}
	case "linux":
		return Linux{Legacy: opts.LegacyLinuxListing}
	case "windows":
		return Windows{}
	default:
		return Static{Name: goos}
	}
}

// ForCurrentPlatform detects the provider for the running process.
func ForCurrentPlatform(opts Options) ports.FontDirectoryProvider {
	return Detect(runtime.GOOS, os.Getenv, opts)
}

// WithExtra appends extra directories to a provider. The base filter policy
// is kept. Extra directories are scanned recursively.
func WithExtra(base ports.FontDirectoryProvider, dirs ...string) ports.FontDirectoryProvider {
	if len(dirs) == 0 {
		return base
	}
	extra := make([]ports.FontDirectory, 0, len(dirs))
	for _, d := range dirs {
		if d == "" {
			continue
		}
		extra = append(extra, ports.FontDirectory{Path: d, Recursive: true})
	}
	return Static{
		Name:   base.Platform(),
		Dirs:   append(base.Directories(), extra...),
		Policy: base.Filter(),
	}
}

var (
	_ ports.FontDirectoryProvider = Darwin{}
	_ ports.FontDirectoryProvider = Linux{}
	_ ports.FontDirectoryProvider = Windows{}
	_ ports.FontDirectoryProvider = Static{}
)
