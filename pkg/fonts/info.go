package fonts

import "github.com/user/designlibre/pkg/ports"

// FontInfo describes one installed font file.
type FontInfo struct {
	Name  string           `json:"name"`
	Path  string           `json:"path"`
	Faces []ports.FontFace `json:"faces"`
}

// Inspector reads face metadata for installed fonts.
type Inspector struct {
	enum      *Enumerator
	fs        ports.FileSystem
	inspector ports.FontInspector
}

// NewInspector creates an Inspector resolving names through enum.
func NewInspector(enum *Enumerator, fs ports.FileSystem, inspector ports.FontInspector) *Inspector {
	return &Inspector{enum: enum, fs: fs, inspector: inspector}
}

// Info locates the font file called name and parses its naming table.
func (i *Inspector) Info(name string) (FontInfo, error) {
	path, err := i.enum.Locate(name)
	if err != nil {
		return FontInfo{}, &Error{Op: OpLocate, Name: name, Err: err}
	}

	data, err := i.fs.ReadFile(path)
	if err != nil {
		return FontInfo{}, &Error{Op: OpRead, Name: name, Err: err}
	}

	faces, err := i.inspector.Inspect(data)
	if err != nil {
		return FontInfo{}, &Error{Op: OpParse, Name: name, Err: err}
	}

	return FontInfo{Name: name, Path: path, Faces: faces}, nil
}
