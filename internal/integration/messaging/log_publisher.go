package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// LogPublisher writes messages to the structured log instead of a broker.
// It is used when no AMQP URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

var _ adapter.MessagePublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a LogPublisher. A nil logger means slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs the JSON form of payload at Info.
func (p *LogPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	p.logger.InfoContext(ctx, "Message published to log",
		"routing_key", routingKey,
		"body", string(body))
	return nil
}
