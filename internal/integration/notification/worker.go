// Package notification runs the background recurring-transaction notifier.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
)

// Sweeper is the recurrence sweep consumed by the worker.
type Sweeper interface {
	Execute(ctx context.Context, input recurrence.SweepInput) (*recurrence.SweepOutput, error)
}

// Worker periodically sweeps recurring transactions and publishes reminders.
type Worker struct {
	sweeper      Sweeper
	pollInterval time.Duration
	dedupeTTL    time.Duration
	now          func() time.Time
}

// WorkerConfig holds configuration for the notifier worker.
type WorkerConfig struct {
	PollInterval time.Duration
	DedupeTTL    time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 15 * time.Minute,
		DedupeTTL:    recurrence.DefaultDedupeTTL,
	}
}

// NewWorker creates a new notifier worker.
func NewWorker(sweeper Sweeper, config WorkerConfig) *Worker {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultWorkerConfig().PollInterval
	}
	return &Worker{
		sweeper:      sweeper,
		pollInterval: config.PollInterval,
		dedupeTTL:    config.DedupeTTL,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"dedupe_ttl", w.dedupeTTL,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Sweep immediately on start, then on ticker
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) *recurrence.SweepOutput {
	out, err := w.sweeper.Execute(ctx, recurrence.SweepInput{
		Now:       w.now(),
		DedupeTTL: w.dedupeTTL,
	})
	if err != nil {
		slog.Error("Recurring notification sweep failed", "error", err)
		return nil
	}

	if out.Published > 0 || out.Failed > 0 {
		slog.Info("Recurring notification sweep finished",
			"published", out.Published,
			"duplicates", out.Duplicates,
			"failed", out.Failed,
		)
	}
	return out
}

// ProcessNow runs one sweep immediately (useful for testing and the CLI).
func (w *Worker) ProcessNow(ctx context.Context) *recurrence.SweepOutput {
	return w.sweep(ctx)
}
