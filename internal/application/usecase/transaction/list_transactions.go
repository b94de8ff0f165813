package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/usecase/analytics"
	"github.com/walletwise/backend/internal/domain/entity"
)

// defaultListLimit is used when the caller does not cap the page.
const defaultListLimit = 50

// ListTransactionsInput represents the input for listing spends. When
// Period is set the listing covers that resolved window and Limit is
// ignored; otherwise the most recent transactions are returned.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Limit  int
	Period analytics.PeriodKey
}

// ListTransactionsOutput represents the user's transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute returns the user's transactions, newest first. A period input
// scopes the listing to the named window ending at now.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Period != "" {
		dateRange := analytics.ResolvePeriod(input.Period, uc.now())
		transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, dateRange.Start, dateRange.End)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		return &ListTransactionsOutput{Transactions: transactions}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	transactions, err := uc.transactionRepo.FindRecentByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
