package fonts

import (
	"errors"
	"io/fs"

	perrors "github.com/jmgilman/go/errors"
)

// Operations reported by Error.
const (
	OpLocate  = "locate font"
	OpRead    = "read file"
	OpParse   = "parse font"
	OpPreview = "render preview"
)

// Error reports a failed font operation as "Failed to <op>: <cause>".
type Error struct {
	Op   string
	Name string
	Err  error
}

func (e *Error) Error() string {
	return "Failed to " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code classifies the failure.
func (e *Error) Code() perrors.ErrorCode {
	switch {
	case errors.Is(e.Err, ErrFontNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return perrors.CodeNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return perrors.CodeForbidden
	case e.Op == OpParse, errors.Is(e.Err, ErrPreviewTooLarge), errors.Is(e.Err, ErrUnsupportedFormat):
		return perrors.CodeInvalidInput
	default:
		return perrors.CodeInternal
	}
}
