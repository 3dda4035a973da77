package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DefaultDedupeTTL is used when SweepInput.DedupeTTL is not set.
const DefaultDedupeTTL = 24 * time.Hour

// RecurringNotification is the message published for a missed or upcoming
// recurring transaction.
type RecurringNotification struct {
	TransactionID     uuid.UUID                `json:"transaction_id"`
	UserID            uuid.UUID                `json:"user_id"`
	Bucket            entity.RecurrenceBucket  `json:"bucket"`
	Type              entity.TransactionType   `json:"type"`
	Category          string                   `json:"category"`
	Amount            decimal.Decimal          `json:"amount"`
	Date              time.Time                `json:"date"`
	RecurrencePattern entity.RecurrencePattern `json:"recurrence_pattern"`
	NotifiedAt        time.Time                `json:"notified_at"`
}

// SweepInput represents the input for a notification sweep.
type SweepInput struct {
	Now       time.Time
	DedupeTTL time.Duration
}

// SweepOutput reports what a sweep did.
type SweepOutput struct {
	Published  int
	Duplicates int
	Failed     int
}

// SweepUseCase classifies every user's recurring transactions and publishes
// one notification per transaction, bucket and day.
type SweepUseCase struct {
	transactionRepo adapter.TransactionRepository
	dedup           adapter.NotificationDeduplicator
	publisher       adapter.MessagePublisher
}

// NewSweepUseCase creates a new SweepUseCase instance. dedup may be nil, in
// which case every candidate is published.
func NewSweepUseCase(
	transactionRepo adapter.TransactionRepository,
	dedup adapter.NotificationDeduplicator,
	publisher adapter.MessagePublisher,
) *SweepUseCase {
	return &SweepUseCase{
		transactionRepo: transactionRepo,
		dedup:           dedup,
		publisher:       publisher,
	}
}

// Execute performs one sweep.
func (uc *SweepUseCase) Execute(ctx context.Context, input SweepInput) (*SweepOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	ttl := input.DedupeTTL
	if ttl <= 0 {
		ttl = DefaultDedupeTTL
	}

	buckets, err := classify(ctx, uc.transactionRepo, transaction.Scope{IsAdmin: true, AllUsers: true}, now)
	if err != nil {
		return nil, err
	}

	output := &SweepOutput{}
	uc.notify(ctx, entity.RecurrenceBucketMissed, buckets.Missed, now, ttl, output)
	uc.notify(ctx, entity.RecurrenceBucketUpcoming, buckets.Upcoming, now, ttl, output)

	return output, nil
}

func (uc *SweepUseCase) notify(
	ctx context.Context,
	bucket entity.RecurrenceBucket,
	rows []*entity.Transaction,
	now time.Time,
	ttl time.Duration,
	output *SweepOutput,
) {
	for _, t := range rows {
		key := DedupeKey(bucket, t.ID, now)
		marked := false
		if uc.dedup != nil {
			first, err := uc.dedup.MarkSent(ctx, key, ttl)
			if err != nil {
				slog.Warn("Notification dedupe failed, publishing anyway",
					"transaction_id", t.ID,
					"bucket", bucket,
					"error", err,
				)
			} else if !first {
				output.Duplicates++
				continue
			} else {
				marked = true
			}
		}

		msg := RecurringNotification{
			TransactionID:     t.ID,
			UserID:            t.UserID,
			Bucket:            bucket,
			Type:              t.Type,
			Category:          t.Category,
			Amount:            t.Amount,
			Date:              t.Date,
			RecurrencePattern: t.RecurrencePattern,
			NotifiedAt:        now,
		}
		if err := uc.publisher.Publish(ctx, adapter.RoutingKeyRecurringReminder, msg); err != nil {
			slog.Error("Failed to publish recurring notification",
				"transaction_id", t.ID,
				"bucket", bucket,
				"error", err,
			)
			output.Failed++
			if marked {
				if err := uc.dedup.Release(ctx, key); err != nil {
					slog.Warn("Failed to release notification dedupe key",
						"transaction_id", t.ID,
						"bucket", bucket,
						"error", err,
					)
				}
			}
			continue
		}
		output.Published++
	}
}

// DedupeKey identifies a notification for one transaction, bucket and UTC day.
func DedupeKey(bucket entity.RecurrenceBucket, transactionID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("recurring:%s:%s:%s", bucket, transactionID, now.UTC().Format("2006-01-02"))
}
