package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
)

// TransactionRecordedMessage is the wire form of event.TransactionRecorded.
type TransactionRecordedMessage struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	Tags          []string  `json:"tags"`
	IsRecurring   bool      `json:"is_recurring"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Forwarder relays recorded transactions to a MessagePublisher.
// Delivery is best effort: a failed publish is logged and swallowed so that
// it never surfaces as an allocation failure.
type Forwarder struct {
	publisher adapter.MessagePublisher
}

var _ event.Handler = (*Forwarder)(nil)

// NewForwarder creates a Forwarder.
func NewForwarder(publisher adapter.MessagePublisher) *Forwarder {
	return &Forwarder{publisher: publisher}
}

// Handle publishes evt under RoutingKeyTransactionRecorded.
func (f *Forwarder) Handle(ctx context.Context, evt event.TransactionRecorded) error {
	t := evt.Transaction
	msg := TransactionRecordedMessage{
		TransactionID: t.ID,
		UserID:        t.UserID,
		Type:          string(t.Type),
		Amount:        t.Amount.StringFixed(2),
		Category:      t.Category,
		Date:          t.Date,
		Tags:          t.Tags.Strings(),
		IsRecurring:   t.IsRecurring,
		OccurredAt:    evt.OccurredAt,
	}

	if err := f.publisher.Publish(ctx, adapter.RoutingKeyTransactionRecorded, msg); err != nil {
		slog.WarnContext(ctx, "Failed to forward transaction event",
			"transaction_id", t.ID,
			"error", err)
	}
	return nil
}
