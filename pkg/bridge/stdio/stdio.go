// Package stdio serves bridge frames as newline-delimited JSON over a pair
// of streams, for hosts that run the backend as a sidecar process.
package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/user/designlibre/pkg/bridge"
	"github.com/user/designlibre/pkg/ports"
)

// maxFrameSize bounds a single request line. Design files travel inside
// write requests, so the limit is generous.
const maxFrameSize = 256 << 20

// Server reads request frames from in and writes responses to out.
// Requests are handled one at a time in arrival order.
type Server struct {
	inv    bridge.Invoker
	in     io.Reader
	out    io.Writer
	logger ports.Logger
}

// New creates a stdio server.
func New(inv bridge.Invoker, in io.Reader, out io.Writer, logger ports.Logger) *Server {
	return &Server{
		inv:    inv,
		in:     in,
		out:    out,
		logger: logger.WithComponent("stdio"),
	}
}

// Serve processes frames until in reaches EOF or ctx is cancelled.
// A cancelled context stops the loop between frames; a command already
// running completes first.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)
	enc := json.NewEncoder(s.out)

	s.logger.Info("Bridge ready on stdio")

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req bridge.Frame
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("Discarding malformed frame: %v", err)
			if err := enc.Encode(bridge.Reject(0, "malformed frame: "+err.Error())); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			continue
		}

		resp := bridge.Dispatch(ctx, s.inv, req)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read frames: %w", err)
	}
	s.logger.Info("Bridge input closed")
	return nil
}
