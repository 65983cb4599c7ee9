package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCommand struct {
	Fail bool
}

func (c testCommand) Validate() error {
	if c.Fail {
		return errors.New("invalid")
	}
	return nil
}

func TestCommandBus_Dispatch(t *testing.T) {
	b := NewCommandBus()
	handled := false
	err := b.Register(testCommand{}, CommandHandlerFunc(
		func(ctx context.Context, cmd Command) error {
			handled = true
			return nil
		}))
	require.NoError(t, err)

	require.NoError(t, b.Send(context.Background(), testCommand{}))
	assert.True(t, handled)
}

func TestCommandBus_ValidationRunsBeforeDispatch(t *testing.T) {
	b := NewCommandBus()
	handled := false
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(
		func(ctx context.Context, cmd Command) error {
			handled = true
			return nil
		})))

	err := b.Send(context.Background(), testCommand{Fail: true})

	assert.Error(t, err)
	assert.False(t, handled)
}

func TestCommandBus_DuplicateRegistration(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, handler))
	assert.Error(t, b.Register(testCommand{}, handler))
}

func TestCommandBus_UnregisteredCommand(t *testing.T) {
	b := NewCommandBus()
	assert.Error(t, b.Send(context.Background(), testCommand{}))
}

func TestLoggingMiddleware_PassesErrorThrough(t *testing.T) {
	logging := NewLoggingMiddleware(zap.NewNop())
	want := errors.New("handler blew up")
	wrapped := logging.Wrap(CommandHandlerFunc(
		func(ctx context.Context, cmd Command) error { return want }))

	err := wrapped.Handle(context.Background(), testCommand{})

	// The middleware must not wrap; callers match on the original error
	assert.Equal(t, want, err)
}
