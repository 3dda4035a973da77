// Package event provides the in-process notification raised after ledger writes.
package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRecorded is raised once a new transaction has been persisted.
type TransactionRecorded struct {
	Transaction *entity.Transaction
	OccurredAt  time.Time
}

// Handler reacts to a recorded transaction.
type Handler interface {
	Handle(ctx context.Context, evt TransactionRecorded) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt TransactionRecorded) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, evt TransactionRecorded) error {
	return f(ctx, evt)
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, evt TransactionRecorded) error
}

type subscription struct {
	name    string
	handler Handler
}

// Bus is a synchronous publisher. Handlers run in subscription order on the
// caller's goroutine, and every handler runs even if an earlier one failed.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a named handler.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, handler: handler})
}

// Publish runs every handler and joins their errors.
func (b *Bus) Publish(ctx context.Context, evt TransactionRecorded) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if err := s.handler.Handle(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
