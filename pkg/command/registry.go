package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/user/designlibre/pkg/ports"
)

// ErrUnknownCommand is returned by Invoke for unregistered names.
var ErrUnknownCommand = errors.New("unknown command")

// Handler is a command bound to JSON arguments and results.
type Handler func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

// Registry maps command names to handlers. Handlers run on the caller's
// goroutine; the registry adds no locking around their effects.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   ports.Logger

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewRegistry creates an empty registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger.WithComponent("command"),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Register binds a typed command under name, replacing any previous one.
// An empty or null payload decodes to the zero In.
func Register[In, Out any](r *Registry, name string, cmd Command[In, Out]) {
	r.Handle(name, func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
		var in In
		if trimmed := bytes.TrimSpace(payload); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			if err := json.Unmarshal(trimmed, &in); err != nil {
				return nil, fmt.Errorf("invalid arguments for %s: %w", name, err)
			}
		}

		out, err := cmd.Execute(ctx, in)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encode result of %s: %w", name, err)
		}
		return data, nil
	})
}

// Handle registers a raw JSON handler.
func (r *Registry) Handle(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Names returns the registered command names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command once. Errors from the command are returned
// unchanged so their message reaches the host verbatim.
func (r *Registry) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	id := r.newInvocationID()
	start := time.Now()
	r.logger.Debug("Invoking %s (%s)", name, id)

	result, err := h(ctx, payload)
	if err != nil {
		r.logger.Debug("Command %s (%s) failed after %s: %v", name, id, time.Since(start), err)
		return nil, err
	}

	r.logger.Debug("Command %s (%s) completed in %s", name, id, time.Since(start))
	return result, nil
}

func (r *Registry) newInvocationID() string {
	r.idMu.Lock()
	defer r.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}
