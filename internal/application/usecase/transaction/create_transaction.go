// Package transaction contains the spending record use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// maxNoteLength caps the free-text note on a transaction.
const maxNoteLength = 500

// CreateTransactionInput represents the input for recording a spend.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	BudgetID     *uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Date         time.Time
	Note         string
}

// CreateTransactionOutput represents the recorded transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase records a spend, resolving the category by
// name and creating it on first use.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	events          event.Publisher
	now             func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	events event.Publisher,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		events:          events,
		now:             time.Now,
	}
}

// Execute validates and persists the transaction, then announces it.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if len(input.Note) > maxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note exceeds %d characters", maxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = uc.now()
	}

	var category *entity.Category
	var categoryID *uuid.UUID
	if name := strings.TrimSpace(input.CategoryName); name != "" {
		found, err := uc.categoryRepo.FindOrCreateByName(ctx, input.UserID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		category = found
		categoryID = &found.ID
	}

	transaction := entity.NewTransaction(input.UserID, input.BudgetID, categoryID, input.Amount, date, input.Note)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.TransactionAdded, UserID: input.UserID})

	return &CreateTransactionOutput{Transaction: transaction, Category: category}, nil
}
