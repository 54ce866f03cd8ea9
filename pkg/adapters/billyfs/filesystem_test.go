package billyfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_WriteAndRead(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.Unwrap().MkdirAll("/designs", 0755))

	require.NoError(t, fsys.WriteFile("/designs/logo.svg", []byte("<svg/>")))

	data, err := fsys.ReadFile("/designs/logo.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	require.NoError(t, fsys.WriteFile("/designs/logo.svg", []byte("x")))
	data, err = fsys.ReadFile("/designs/logo.svg")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data), "second write must truncate")
}

func TestMemory_WriteMissingParent(t *testing.T) {
	fsys := NewMemory()

	err := fsys.WriteFile("/nowhere/logo.svg", []byte("<svg/>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = fsys.Unwrap().Stat("/nowhere")
	assert.ErrorIs(t, err, os.ErrNotExist, "parent directory must not be created")
}

func TestMemory_WriteParentIsFile(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("/plain", []byte("data")))

	err := fsys.WriteFile("/plain/child.svg", []byte("<svg/>"))
	require.Error(t, err)
}

func TestMemory_ReadDir(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.Unwrap().MkdirAll("/fonts/truetype", 0755))
	require.NoError(t, fsys.WriteFile("/fonts/a.otf", nil))
	require.NoError(t, fsys.WriteFile("/fonts/b.ttf", nil))

	entries, err := fsys.ReadDir("/fonts")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}
	assert.Equal(t, map[string]bool{"a.otf": false, "b.ttf": false, "truetype": true}, names)
}

func TestMemory_ReadDirMissing(t *testing.T) {
	_, err := NewMemory().ReadDir("/fonts")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRooted_ConfinesPaths(t *testing.T) {
	root := t.TempDir()
	fsys := NewRooted(root)

	require.NoError(t, os.Mkdir(filepath.Join(root, "projects"), 0755))
	require.NoError(t, fsys.WriteFile("projects/card.svg", []byte("<svg/>")))

	data, err := os.ReadFile(filepath.Join(root, "projects", "card.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	_, err = fsys.ReadFile("../outside.txt")
	assert.Error(t, err)
}
