// Package sfntinspector reads font naming tables with golang.org/x/image/font/sfnt.
package sfntinspector

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/user/designlibre/pkg/ports"
)

// Inspector implements ports.FontInspector.
type Inspector struct{}

// New creates a new Inspector.
func New() *Inspector {
	return &Inspector{}
}

// Inspect parses TrueType, OpenType and collection data. A single font is
// treated as a collection of one.
func (i *Inspector) Inspect(data []byte) ([]ports.FontFace, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	faces := make([]ports.FontFace, 0, coll.NumFonts())
	for n := 0; n < coll.NumFonts(); n++ {
		f, err := coll.Font(n)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", n, err)
		}
		faces = append(faces, ports.FontFace{
			Family:         name(f, &buf, sfnt.NameIDFamily),
			Subfamily:      name(f, &buf, sfnt.NameIDSubfamily),
			FullName:       name(f, &buf, sfnt.NameIDFull),
			PostScriptName: name(f, &buf, sfnt.NameIDPostScript),
		})
	}
	return faces, nil
}

// name returns the entry for id, or "" when the table lacks it.
func name(f *sfnt.Font, buf *sfnt.Buffer, id sfnt.NameID) string {
	s, err := f.Name(buf, id)
	if err != nil {
		return ""
	}
	return s
}

var _ ports.FontInspector = (*Inspector)(nil)
