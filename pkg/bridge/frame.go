// Package bridge defines the frames exchanged between the host and the
// backend, independent of the transport carrying them.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	perrors "github.com/jmgilman/go/errors"
)

// FrameType identifies the kind of frame.
type FrameType string

const (
	FrameTypeRequest  FrameType = "request"
	FrameTypeResponse FrameType = "response"
)

// Frame is the envelope exchanged with the host.
type Frame struct {
	Type    FrameType       `json:"type"`
	ID      uint64          `json:"id,omitempty"`      // request/response correlation ID
	Method  string          `json:"method,omitempty"`  // command name (request only)
	Payload json.RawMessage `json:"payload,omitempty"` // command arguments or result
	Error   string          `json:"error,omitempty"`   // command error message (response only)
	Code    string          `json:"code,omitempty"`    // error classification (response only)
}

// Invoker runs a named command.
type Invoker interface {
	Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error)
}

// Reject builds an INVALID_INPUT response for a frame that cannot be
// dispatched.
func Reject(id uint64, msg string) Frame {
	return Frame{
		Type:  FrameTypeResponse,
		ID:    id,
		Error: msg,
		Code:  string(perrors.CodeInvalidInput),
	}
}

// Dispatch runs a request frame and builds its response. A successful
// command with no payload answers with a null payload. Frames that are not
// requests are rejected.
func Dispatch(ctx context.Context, inv Invoker, req Frame) Frame {
	if req.Type != FrameTypeRequest {
		return Reject(req.ID, fmt.Sprintf("unexpected frame type %q", req.Type))
	}

	resp := Frame{Type: FrameTypeResponse, ID: req.ID}

	result, err := inv.Invoke(ctx, req.Method, req.Payload)
	if err != nil {
		resp.Error = err.Error()
		resp.Code = codeOf(err)
		return resp
	}

	if result == nil {
		result = json.RawMessage("null")
	}
	resp.Payload = result
	return resp
}

type coder interface {
	Code() perrors.ErrorCode
}

// codeOf returns the classification of err, or "" when it has none.
func codeOf(err error) string {
	var c coder
	if errors.As(err, &c) {
		return string(c.Code())
	}
	if code := perrors.GetCode(err); code != perrors.CodeUnknown {
		return string(code)
	}
	return ""
}
