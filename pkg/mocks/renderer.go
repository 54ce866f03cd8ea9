package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/designlibre/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	// TextWidth and TextHeight are what canvases created by the default
	// CreateCanvas report from MeasureText, unless MeasureTextFunc is set.
	TextWidth       float64
	TextHeight      float64
	MeasureTextFunc func(text string, size float64) (float64, float64)

	mu       sync.Mutex
	canvases []*Canvas
	resized  [][2]int
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{Width: width, Height: height, textWidth: m.TextWidth, textHeight: m.TextHeight, measure: m.MeasureTextFunc}
	m.mu.Lock()
	m.canvases = append(m.canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.mu.Lock()
	m.resized = append(m.resized, [2]int{width, height})
	m.mu.Unlock()
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Canvases returns every canvas created through the default CreateCanvas.
func (m *Renderer) Canvases() []*Canvas {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Canvas(nil), m.canvases...)
}

// Resized returns the target sizes passed to ResizeImage.
func (m *Renderer) Resized() [][2]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][2]int(nil), m.resized...)
}

var _ ports.Renderer = (*Renderer)(nil)

// TextCall records a DrawText call.
type TextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	Width  int
	Height int

	// SetFontErr is returned from SetFont when set.
	SetFontErr error

	FontPath string
	FontSize float64
	Texts    []TextCall

	textWidth  float64
	textHeight float64
	measure    func(text string, size float64) (float64, float64)
}

func (m *Canvas) SetFont(path string, size float64) error {
	if m.SetFontErr != nil {
		return m.SetFontErr
	}
	m.FontPath = path
	m.FontSize = size
	return nil
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, TextCall{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) MeasureText(text string) (float64, float64) {
	if m.measure != nil {
		return m.measure(text, m.FontSize)
	}
	return m.textWidth, m.textHeight
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
