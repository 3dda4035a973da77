package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTagsInput represents the input for replacing a transaction's tags.
type UpdateTagsInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	IsAdmin       bool
	Tags          []string
}

// UpdateTagsOutput represents the output of a tag replacement.
type UpdateTagsOutput struct {
	Transaction *TransactionOutput
}

// UpdateTagsUseCase replaces the tag set of a transaction. Applying the same
// tags twice leaves the transaction unchanged.
type UpdateTagsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTagsUseCase creates a new UpdateTagsUseCase instance.
func NewUpdateTagsUseCase(transactionRepo adapter.TransactionRepository) *UpdateTagsUseCase {
	return &UpdateTagsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the tag replacement.
func (uc *UpdateTagsUseCase) Execute(ctx context.Context, input UpdateTagsInput) (*UpdateTagsOutput, error) {
	tags, err := valueobject.ParseTags(input.Tags)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTags,
			"tags must be a non-empty list of non-blank strings",
			fmt.Errorf("%w: %w", domainerror.ErrInvalidTags, err),
		)
	}

	transaction, err := findVisible(ctx, uc.transactionRepo, input.TransactionID, input.UserID, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if transaction.Tags.Equal(tags) {
		return &UpdateTagsOutput{Transaction: ToTransactionOutput(transaction)}, nil
	}

	now := time.Now().UTC()
	if err := uc.transactionRepo.ReplaceTags(ctx, transaction.ID, tags, now); err != nil {
		return nil, fmt.Errorf("failed to replace tags: %w", err)
	}

	transaction.Tags = tags
	transaction.UpdatedAt = now

	return &UpdateTagsOutput{
		Transaction: ToTransactionOutput(transaction),
	}, nil
}
