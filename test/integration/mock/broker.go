package mock

import (
	"context"
	"encoding/json"
	"sync"
)

// Broker records published messages per routing key instead of sending them.
type Broker struct {
	mu       sync.Mutex
	received map[string][]map[string]any
}

func NewBroker() *Broker {
	return &Broker{received: map[string][]map[string]any{}}
}

// Publish implements adapter.MessagePublisher. Payloads are stored in their
// JSON form so scenarios can assert on wire field names.
func (b *Broker) Publish(_ context.Context, routingKey string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.received[routingKey] = append(b.received[routingKey], body)
	return nil
}

func (b *Broker) Received(routingKey string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.received[routingKey]...)
}

func (b *Broker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.received = map[string][]map[string]any{}
}
