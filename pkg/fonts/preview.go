package fonts

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/user/designlibre/pkg/ports"
)

// Preview defaults and limits.
const (
	DefaultPreviewText = "The quick brown fox jumps over the lazy dog"
	DefaultPreviewSize = 32.0

	// MaxPreviewSize is the largest accepted point size.
	MaxPreviewSize = 512.0

	// MaxPreviewPixels bounds the canvas area of a single preview.
	MaxPreviewPixels = 16 << 20

	previewPadding = 8
	jpegQuality    = 90
)

// Preview output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

var (
	// ErrEmptyPreview is returned when the sample text renders to nothing.
	ErrEmptyPreview = errors.New("sample text has no visible extent")

	// ErrPreviewTooLarge is returned when a request exceeds the size or
	// area limits.
	ErrPreviewTooLarge = errors.New("preview too large")

	// ErrUnsupportedFormat is returned for output formats other than PNG
	// and JPEG.
	ErrUnsupportedFormat = errors.New("unsupported preview format")
)

// PreviewRequest describes a font sample to render.
type PreviewRequest struct {
	Name     string  `json:"name"`
	Text     string  `json:"text,omitempty"`
	Size     float64 `json:"size,omitempty"`
	MaxWidth int     `json:"max_width,omitempty"`
	Format   string  `json:"format,omitempty"` // png (default) or jpeg
}

// PreviewImage is an encoded sample rendering. Data is base64 in JSON.
type PreviewImage struct {
	MIMEType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Data     []byte `json:"data"`
}

// Previewer renders text samples with installed fonts.
type Previewer struct {
	enum     *Enumerator
	renderer ports.Renderer
	defaults PreviewRequest
}

// NewPreviewer creates a Previewer. Zero fields in defaults fall back to
// DefaultPreviewText and DefaultPreviewSize.
func NewPreviewer(enum *Enumerator, renderer ports.Renderer, defaults PreviewRequest) *Previewer {
	if defaults.Text == "" {
		defaults.Text = DefaultPreviewText
	}
	if defaults.Size <= 0 {
		defaults.Size = DefaultPreviewSize
	}
	return &Previewer{enum: enum, renderer: renderer, defaults: defaults}
}

// Render draws req.Text in the named font on a white strip and returns the
// encoded image.
func (p *Previewer) Render(req PreviewRequest) (PreviewImage, error) {
	if req.Text == "" {
		req.Text = p.defaults.Text
	}
	if req.Size <= 0 {
		req.Size = p.defaults.Size
	}
	if req.MaxWidth <= 0 {
		req.MaxWidth = p.defaults.MaxWidth
	}
	if req.Size > MaxPreviewSize {
		return PreviewImage{}, &Error{Op: OpPreview, Name: req.Name, Err: sizeError(req.Size)}
	}

	path, err := p.enum.Locate(req.Name)
	if err != nil {
		return PreviewImage{}, &Error{Op: OpLocate, Name: req.Name, Err: err}
	}
	return p.RenderFile(path, req)
}

// RenderFile renders a sample from a font file path. When req.MaxWidth is
// set the font size is reduced before drawing so the canvas is never wider
// than the output.
func (p *Previewer) RenderFile(path string, req PreviewRequest) (PreviewImage, error) {
	fail := func(err error) (PreviewImage, error) {
		return PreviewImage{}, &Error{Op: OpPreview, Name: req.Name, Err: err}
	}

	if req.Size > MaxPreviewSize {
		return fail(sizeError(req.Size))
	}
	format, mime, err := outputFormat(req.Format)
	if err != nil {
		return fail(err)
	}

	// Measure on a scratch canvas, then size the real one to fit.
	size := req.Size
	scratch := p.renderer.CreateCanvas(1, 1, color.White)
	if err := scratch.SetFont(path, size); err != nil {
		return fail(err)
	}
	w, h := scratch.MeasureText(req.Text)
	if w <= 0 || h <= 0 {
		return fail(ErrEmptyPreview)
	}

	// One pixel of slack keeps the rounded-up width inside MaxWidth.
	if avail := float64(req.MaxWidth - 2*previewPadding - 1); req.MaxWidth > 0 && avail > 0 && w > avail {
		size *= avail / w
		if err := scratch.SetFont(path, size); err != nil {
			return fail(err)
		}
		w, h = scratch.MeasureText(req.Text)
		if w <= 0 || h <= 0 {
			return fail(ErrEmptyPreview)
		}
	}

	width := int(math.Ceil(w)) + 2*previewPadding
	height := int(math.Ceil(h*1.5)) + 2*previewPadding
	if int64(width)*int64(height) > MaxPreviewPixels {
		return fail(fmt.Errorf("%w: %dx%d canvas exceeds %d pixels", ErrPreviewTooLarge, width, height, MaxPreviewPixels))
	}

	canvas := p.renderer.CreateCanvas(width, height, color.White)
	if err := canvas.SetFont(path, size); err != nil {
		return fail(err)
	}
	canvas.DrawText(req.Text, width/2, height/2, ports.TextStyle{Color: color.Black, Align: ports.AlignCenter})

	// Glyph metrics do not scale exactly with size; trim what is left.
	img := canvas.ToImage()
	if req.MaxWidth > 0 && width > req.MaxWidth {
		scaledH := int(math.Max(1, math.Round(float64(height)*float64(req.MaxWidth)/float64(width))))
		width, height = req.MaxWidth, scaledH
		img = p.renderer.ResizeImage(img, width, height)
	}

	data, err := p.renderer.EncodeImage(img, format, jpegQuality)
	if err != nil {
		return fail(err)
	}

	return PreviewImage{MIMEType: mime, Width: width, Height: height, Data: data}, nil
}

func sizeError(size float64) error {
	return fmt.Errorf("%w: size %g exceeds %g", ErrPreviewTooLarge, size, MaxPreviewSize)
}

func outputFormat(name string) (ports.ImageFormat, string, error) {
	switch strings.ToLower(name) {
	case "", FormatPNG:
		return ports.FormatPNG, "image/png", nil
	case FormatJPEG, "jpg":
		return ports.FormatJPEG, "image/jpeg", nil
	default:
		return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}
