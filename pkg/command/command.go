// Package command provides the typed command registry exposed to the host.
package command

import (
	"context"
)

// Command is a single named backend operation.
// Each command takes an input and produces an output.
type Command[In, Out any] interface {
	// Execute runs the command with the given input and returns the output.
	Execute(ctx context.Context, input In) (Out, error)
}

// Func is a function adapter for the Command interface.
type Func[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Command interface.
func (f Func[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Empty is the input of commands that take no arguments.
type Empty struct{}

// Void is the output of commands that return no payload. It encodes as null.
type Void = *struct{}
