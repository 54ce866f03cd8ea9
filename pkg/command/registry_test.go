package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/designlibre/pkg/adapters/logger"
)

type greetIn struct {
	Name string `json:"name"`
}

type greetOut struct {
	Message string `json:"message"`
}

func newTestRegistry() *Registry {
	r := NewRegistry(logger.NewNoop())
	Register[greetIn, greetOut](r, "greet", Func[greetIn, greetOut](func(_ context.Context, in greetIn) (greetOut, error) {
		if in.Name == "" {
			return greetOut{}, errors.New("Failed to greet: no name")
		}
		return greetOut{Message: "hello " + in.Name}, nil
	}))
	Register[Empty, []string](r, "list", Func[Empty, []string](func(context.Context, Empty) ([]string, error) {
		return []string{"a", "b"}, nil
	}))
	Register[greetIn, Void](r, "void", Func[greetIn, Void](func(context.Context, greetIn) (Void, error) {
		return nil, nil
	}))
	return r
}

func TestRegistry_Invoke(t *testing.T) {
	r := newTestRegistry()

	out, err := r.Invoke(context.Background(), "greet", json.RawMessage(`{"name":"ada"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hello ada"}`, string(out))
}

func TestRegistry_EmptyPayload(t *testing.T) {
	r := newTestRegistry()

	for _, payload := range []json.RawMessage{nil, json.RawMessage(""), json.RawMessage("null"), json.RawMessage("  ")} {
		out, err := r.Invoke(context.Background(), "list", payload)
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, string(out))
	}
}

func TestRegistry_VoidResult(t *testing.T) {
	r := newTestRegistry()

	out, err := r.Invoke(context.Background(), "void", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestRegistry_CommandErrorPassesThrough(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Invoke(context.Background(), "greet", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Equal(t, "Failed to greet: no name", err.Error())
}

func TestRegistry_InvalidArguments(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Invoke(context.Background(), "greet", json.RawMessage(`{"name":42}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments for greet")
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Invoke(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"greet", "list", "void"}, newTestRegistry().Names())
}

func TestRegistry_InvocationIDsAreUnique(t *testing.T) {
	r := newTestRegistry()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := r.newInvocationID()
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}
