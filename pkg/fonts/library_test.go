package fonts

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/designlibre/pkg/adapters/ggrenderer"
	"github.com/user/designlibre/pkg/adapters/logger"
	"github.com/user/designlibre/pkg/adapters/osfilesystem"
	"github.com/user/designlibre/pkg/adapters/sfntinspector"
	"github.com/user/designlibre/pkg/ports"
)

// fontDir creates a directory holding Go-Regular.ttf and a broken font.
func fontDir(t *testing.T) (*Enumerator, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.otf"), []byte("not a font"), 0644))

	e := NewEnumerator(osfilesystem.New(), static(ports.FilterFontSuffixes, dir), logger.NewNoop())
	return e, dir
}

func TestInspector_Info(t *testing.T) {
	e, dir := fontDir(t)
	ins := NewInspector(e, osfilesystem.New(), sfntinspector.New())

	info, err := ins.Info("Go-Regular.ttf")
	require.NoError(t, err)
	assert.Equal(t, "Go-Regular.ttf", info.Name)
	assert.Equal(t, filepath.Join(dir, "Go-Regular.ttf"), info.Path)
	require.Len(t, info.Faces, 1)
	assert.Equal(t, "Go", info.Faces[0].Family)
}

func TestInspector_Errors(t *testing.T) {
	e, _ := fontDir(t)
	ins := NewInspector(e, osfilesystem.New(), sfntinspector.New())

	_, err := ins.Info("Missing.ttf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to locate font:")
	assert.Equal(t, perrors.CodeNotFound, err.(*Error).Code())

	_, err = ins.Info("Broken.otf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to parse font:")
	assert.Equal(t, perrors.CodeInvalidInput, err.(*Error).Code())
}

func TestPreviewer_Render(t *testing.T) {
	e, _ := fontDir(t)
	p := NewPreviewer(e, ggrenderer.New(), PreviewRequest{})

	img, err := p.Render(PreviewRequest{Name: "Go-Regular.ttf", Text: "Aa", Size: 24})
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)

	decoded, err := png.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, img.Width, decoded.Bounds().Dx())
	assert.Equal(t, img.Height, decoded.Bounds().Dy())
}

func TestPreviewer_DefaultsAndMaxWidth(t *testing.T) {
	e, _ := fontDir(t)
	p := NewPreviewer(e, ggrenderer.New(), PreviewRequest{MaxWidth: 120})

	img, err := p.Render(PreviewRequest{Name: "Go-Regular.ttf"})
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Width, 120)

	decoded, err := png.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, img.Width, decoded.Bounds().Dx())
}

func TestPreviewer_LargeSizeWithinMaxWidth(t *testing.T) {
	e, _ := fontDir(t)
	p := NewPreviewer(e, ggrenderer.New(), PreviewRequest{})

	img, err := p.Render(PreviewRequest{Name: "Go-Regular.ttf", Text: "Hello, world", Size: MaxPreviewSize, MaxWidth: 200})
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Width, 200)

	_, err = p.Render(PreviewRequest{Name: "Go-Regular.ttf", Text: "Hi", Size: 20000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreviewTooLarge)
	assert.Equal(t, perrors.CodeInvalidInput, err.(*Error).Code())
}

func TestPreviewer_JPEG(t *testing.T) {
	e, _ := fontDir(t)
	p := NewPreviewer(e, ggrenderer.New(), PreviewRequest{})

	img, err := p.Render(PreviewRequest{Name: "Go-Regular.ttf", Text: "Aa", Format: "jpeg"})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIMEType)

	decoded, err := jpeg.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, img.Width, decoded.Bounds().Dx())
}

func TestPreviewer_Errors(t *testing.T) {
	e, _ := fontDir(t)
	p := NewPreviewer(e, ggrenderer.New(), PreviewRequest{})

	_, err := p.Render(PreviewRequest{Name: "Missing.ttf"})
	assert.Contains(t, err.Error(), "Failed to locate font:")

	_, err = p.Render(PreviewRequest{Name: "Broken.otf"})
	assert.Contains(t, err.Error(), "Failed to render preview:")
}
