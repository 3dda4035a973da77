package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishRunsAllHandlers(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe("first", HandlerFunc(func(ctx context.Context, evt TransactionRecorded) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	}))
	bus.Subscribe("second", HandlerFunc(func(ctx context.Context, evt TransactionRecorded) error {
		calls = append(calls, "second")
		return nil
	}))

	err := bus.Publish(context.Background(), TransactionRecorded{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first: first failed")
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	assert.NoError(t, NewBus().Publish(context.Background(), TransactionRecorded{}))
}
