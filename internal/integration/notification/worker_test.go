package notification_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
	"github.com/finance-tracker/ledger/internal/integration/notification"
)

type countingSweeper struct {
	calls atomic.Int32
	ttl   time.Duration
	err   error
}

func (s *countingSweeper) Execute(_ context.Context, input recurrence.SweepInput) (*recurrence.SweepOutput, error) {
	s.calls.Add(1)
	s.ttl = input.DedupeTTL
	if s.err != nil {
		return nil, s.err
	}
	return &recurrence.SweepOutput{Published: 1}, nil
}

func TestWorker_ProcessNow(t *testing.T) {
	sweeper := &countingSweeper{}
	w := notification.NewWorker(sweeper, notification.WorkerConfig{PollInterval: time.Hour, DedupeTTL: time.Minute})

	out := w.ProcessNow(context.Background())
	require.NotNil(t, out)
	assert.Equal(t, 1, out.Published)
	assert.Equal(t, time.Minute, sweeper.ttl)

	sweeper.err = errors.New("db down")
	assert.Nil(t, w.ProcessNow(context.Background()))
}

func TestWorker_StartSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	w := notification.NewWorker(sweeper, notification.WorkerConfig{PollInterval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
