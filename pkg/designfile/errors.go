package designfile

import (
	"errors"
	"io/fs"

	perrors "github.com/jmgilman/go/errors"
)

// ErrNotText is the cause reported when file content is not valid UTF-8.
var ErrNotText = errors.New("stream did not contain valid UTF-8")

// Op names the file operation that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// IoError is the only error kind produced by Service. Its message is
// "Failed to <op> file: <cause>" with the cause text embedded verbatim.
type IoError struct {
	Op   Op
	Path string
	Err  error

	platform perrors.PlatformError
}

func newIoError(op Op, path string, cause error) *IoError {
	return &IoError{
		Op:   op,
		Path: path,
		Err:  cause,
		platform: perrors.WrapWithContext(cause, classify(cause), prefix(op), map[string]interface{}{
			"op":   string(op),
			"path": path,
		}),
	}
}

func prefix(op Op) string {
	switch op {
	case OpWrite:
		return "Failed to write file"
	default:
		return "Failed to read file"
	}
}

// Error returns the message surfaced to the host.
func (e *IoError) Error() string {
	return prefix(e.Op) + ": " + e.Err.Error()
}

// Unwrap exposes the classified error, which in turn wraps the cause.
func (e *IoError) Unwrap() error {
	return e.platform
}

// Code returns the structured classification of the failure.
func (e *IoError) Code() perrors.ErrorCode {
	return e.platform.Code()
}

func classify(err error) perrors.ErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return perrors.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return perrors.CodeForbidden
	case errors.Is(err, ErrNotText):
		return perrors.CodeInvalidInput
	default:
		return perrors.CodeInternal
	}
}
