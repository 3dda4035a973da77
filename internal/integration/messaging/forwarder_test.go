package messaging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/event"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/messaging"
)

type capture struct {
	key     string
	payload any
	err     error
}

func (c *capture) Publish(_ context.Context, routingKey string, payload any) error {
	c.key = routingKey
	c.payload = payload
	return c.err
}

func recorded() event.TransactionRecorded {
	txn := entity.NewTransaction(uuid.New(), entity.TransactionTypeIncome, decimal.RequireFromString("12.5"), "salary",
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), valueobject.NewTags([]string{"work"}), "")
	return event.TransactionRecorded{Transaction: txn, OccurredAt: txn.CreatedAt}
}

func TestForwarder_PublishesEvent(t *testing.T) {
	pub := &capture{}
	evt := recorded()

	require.NoError(t, messaging.NewForwarder(pub).Handle(context.Background(), evt))

	assert.Equal(t, adapter.RoutingKeyTransactionRecorded, pub.key)
	msg, ok := pub.payload.(messaging.TransactionRecordedMessage)
	require.True(t, ok)
	assert.Equal(t, evt.Transaction.ID, msg.TransactionID)
	assert.Equal(t, "12.50", msg.Amount)
	assert.Equal(t, []string{"work"}, msg.Tags)
}

func TestForwarder_SwallowsPublishErrors(t *testing.T) {
	pub := &capture{err: errors.New("broker down")}
	assert.NoError(t, messaging.NewForwarder(pub).Handle(context.Background(), recorded()))
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	pub := messaging.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, pub.Publish(context.Background(), adapter.RoutingKeyRecurringReminder, map[string]string{"bucket": "missed"}))
	assert.Contains(t, buf.String(), `"routing_key":"recurring.reminder"`)
	assert.Contains(t, buf.String(), `missed`)

	assert.Error(t, pub.Publish(context.Background(), "x", make(chan int)))
}
