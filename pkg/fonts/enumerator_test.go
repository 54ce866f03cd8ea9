package fonts

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/designlibre/pkg/adapters/fontdirs"
	"github.com/user/designlibre/pkg/adapters/logger"
	"github.com/user/designlibre/pkg/adapters/osfilesystem"
	"github.com/user/designlibre/pkg/mocks"
	"github.com/user/designlibre/pkg/ports"
)

func static(policy ports.FilterPolicy, dirs ...string) fontdirs.Static {
	s := fontdirs.Static{Name: "test", Policy: policy}
	for _, d := range dirs {
		s.Dirs = append(s.Dirs, ports.FontDirectory{Path: d})
	}
	return s
}

func TestEnumerator_FiltersSortsAndDedupes(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/fonts", "b.ttf", "a.otf", "a.otf", "c.txt")

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/fonts"), logger.NewNoop())

	got, err := e.List()
	require.NoError(t, err)
	assert.Equal(t, FontList{"a.otf", "b.ttf"}, got)
}

func TestEnumerator_DedupesAcrossDirectories(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/system", "Helvetica.ttc", "Arial.ttf")
	fsys.SetDir("/user", "Arial.ttf", "Inter.otf", "readme.md")

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/system", "/user"), logger.NewNoop())

	got, err := e.List()
	require.NoError(t, err)
	assert.Equal(t, FontList{"Arial.ttf", "Helvetica.ttc", "Inter.otf"}, got)
}

func TestEnumerator_SuffixIsCaseSensitive(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/fonts", "UPPER.TTF", "lower.ttf", "archive.ttf.bak")

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/fonts"), logger.NewNoop())

	got, _ := e.List()
	assert.Equal(t, FontList{"lower.ttf"}, got)
}

func TestEnumerator_IncludeAllEntries(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/usr/share/fonts", "truetype/", "fonts.dir", "x.ttf", "x.ttf")

	e := NewEnumerator(fsys, static(ports.IncludeAllEntries, "/usr/share/fonts"), logger.NewNoop())

	got, _ := e.List()
	assert.Equal(t, FontList{"fonts.dir", "truetype", "x.ttf"}, got)
}

func TestEnumerator_SkipsUnreadableDirectories(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/ok", "z.ttf")
	fsys.SetDirError("/locked", mocks.ErrPermission("open", "/locked"))

	var seen []string
	policy := func(dir string, err error) { seen = append(seen, dir) }

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/missing", "/locked", "/ok"),
		logger.NewNoop(), WithDirErrorPolicy(policy))

	res := e.Scan()
	assert.Equal(t, FontList{"z.ttf"}, res.Fonts)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, "/missing", res.Skipped[0].Dir)
	assert.True(t, errors.Is(res.Skipped[0].Err, fs.ErrNotExist))
	assert.Equal(t, "/locked", res.Skipped[1].Dir)
	assert.True(t, errors.Is(res.Skipped[1].Err, fs.ErrPermission))
	assert.Equal(t, []string{"/missing", "/locked"}, seen)

	got, err := e.List()
	assert.NoError(t, err)
	assert.Equal(t, FontList{"z.ttf"}, got)
}

func TestSkipWithWarning_LogsMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttf"), nil, 0644))
	missing := filepath.Join(dir, "missing")

	var buf bytes.Buffer
	log := logger.NewConsole(ports.LevelInfo, &buf, &buf)
	e := NewEnumerator(osfilesystem.New(), static(ports.FilterFontSuffixes, dir, missing),
		logger.NewNoop(), WithDirErrorPolicy(SkipWithWarning(log)))

	got, err := e.List()
	require.NoError(t, err)
	assert.Equal(t, FontList{"a.ttf"}, got)

	var warnings []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "Skipping font directory") {
			warnings = append(warnings, line)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Skipping font directory "+missing+":")
	assert.NotContains(t, buf.String(), "Skipping font directory "+dir+":")
}

func TestEnumerator_NoReadableDirectoryIsEmptyNotError(t *testing.T) {
	e := NewEnumerator(mocks.NewFileSystem(), static(ports.FilterFontSuffixes, "/a", "/b"), logger.NewNoop())

	got, err := e.List()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEnumerator_SkipsNonUTF8Names(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/fonts", "ok.ttf", "bad\xff.ttf")

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/fonts"), logger.NewNoop())

	got, _ := e.List()
	assert.Equal(t, FontList{"ok.ttf"}, got)
}

func TestEnumerator_Recursive(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/usr/share/fonts", "truetype/", "top.otf")
	fsys.SetDir(filepath.Join("/usr/share/fonts", "truetype"), "dejavu/", "Ubuntu.ttf")
	fsys.SetDir(filepath.Join("/usr/share/fonts", "truetype", "dejavu"), "DejaVuSans.ttf", "LICENSE")

	p := fontdirs.Static{Name: "linux", Policy: ports.FilterFontSuffixes, Dirs: []ports.FontDirectory{
		{Path: "/usr/share/fonts", Recursive: true},
	}}
	e := NewEnumerator(fsys, p, logger.NewNoop())

	got, _ := e.List()
	assert.Equal(t, FontList{"DejaVuSans.ttf", "Ubuntu.ttf", "top.otf"}, got)

	path, err := e.Locate("DejaVuSans.ttf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/usr/share/fonts", "truetype", "dejavu", "DejaVuSans.ttf"), path)
}

func TestEnumerator_LocatePrefersScanOrder(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/system", "Arial.ttf")
	fsys.SetDir("/user", "Arial.ttf")

	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/system", "/user"), logger.NewNoop())

	path, err := e.Locate("Arial.ttf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/system", "Arial.ttf"), path)
}

func TestEnumerator_LocateMissing(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.SetDir("/fonts", "a.ttf")
	e := NewEnumerator(fsys, static(ports.FilterFontSuffixes, "/fonts"), logger.NewNoop())

	for _, name := range []string{"b.ttf", "", "../a.ttf", `sub\a.ttf`} {
		_, err := e.Locate(name)
		assert.ErrorIs(t, err, ErrFontNotFound, name)
	}
}

func TestEnumerator_RealDirectoriesStableAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ttf", "a.otf", "c.txt", "d.ttc"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	e := NewEnumerator(osfilesystem.New(), static(ports.FilterFontSuffixes, dir, filepath.Join(dir, "missing")), logger.NewNoop())

	first, err := e.List()
	require.NoError(t, err)
	second, err := e.List()
	require.NoError(t, err)

	assert.Equal(t, FontList{"a.otf", "b.ttf", "d.ttc"}, first)
	assert.Equal(t, first, second)
}

func TestEnumerator_RescansEveryCall(t *testing.T) {
	dir := t.TempDir()
	e := NewEnumerator(osfilesystem.New(), static(ports.FilterFontSuffixes, dir), logger.NewNoop())

	got, _ := e.List()
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.ttf"), nil, 0644))
	got, _ = e.List()
	assert.Equal(t, FontList{"new.ttf"}, got)
}

func TestHasFontSuffix(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.ttf", true},
		{"a.otf", true},
		{"a.ttc", true},
		{"a.woff2", false},
		{"ttf", false},
		{"a.TTF", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasFontSuffix(tt.name), tt.name)
	}
}
