package adapter

import (
	"context"
	"io"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Routing keys used when publishing messages.
const (
	RoutingKeyTransactionRecorded = "transaction.recorded"
	RoutingKeyRecurringReminder   = "recurring.reminder"
)

// MessagePublisher sends a JSON-encodable payload to a message broker.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// NotificationDeduplicator remembers which notifications were already sent.
type NotificationDeduplicator interface {
	// MarkSent records key for ttl and reports true only the first time key is seen.
	MarkSent(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets key so the next sweep retries the notification.
	Release(ctx context.Context, key string) error
}

// ReportWriter encodes report rows into a downloadable file format.
type ReportWriter interface {
	ContentType() string
	FileExtension() string
	Write(w io.Writer, rows []*entity.Transaction) error
}
