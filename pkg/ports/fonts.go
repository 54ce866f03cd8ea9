package ports

// FilterPolicy selects which directory entries count as fonts.
type FilterPolicy int

const (
	// FilterFontSuffixes keeps only names ending in a recognised font suffix.
	FilterFontSuffixes FilterPolicy = iota
	// IncludeAllEntries keeps every entry regardless of its name.
	IncludeAllEntries
)

// String returns the string representation of the filter policy.
func (p FilterPolicy) String() string {
	switch p {
	case FilterFontSuffixes:
		return "suffix"
	case IncludeAllEntries:
		return "all"
	default:
		return "unknown"
	}
}

// FontDirectory is a single directory to scan for fonts.
type FontDirectory struct {
	Path      string
	Recursive bool // Descend into sub-directories
}

// FontDirectoryProvider describes where a platform keeps its fonts.
type FontDirectoryProvider interface {
	// Platform returns the operating system name the provider targets.
	Platform() string

	// Directories returns the directories to scan, in scan order.
	Directories() []FontDirectory

	// Filter returns how directory entries are filtered.
	Filter() FilterPolicy
}

// FontFace holds the naming metadata of one face inside a font file.
type FontFace struct {
	Family         string `json:"family"`
	Subfamily      string `json:"subfamily"`
	FullName       string `json:"full_name"`
	PostScriptName string `json:"postscript_name"`
}

// FontInspector extracts face metadata from raw font data.
type FontInspector interface {
	// Inspect parses font data and returns one entry per face.
	// Collections (.ttc) yield several faces.
	Inspect(data []byte) ([]FontFace, error)
}
