// Package analytics contains spending-analytics use cases.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
)

// GetSpendingReportInput represents the input for building a spending report.
type GetSpendingReportInput struct {
	UserID uuid.UUID
	Period PeriodKey
}

// GetSpendingReportOutput represents the output of building a spending report.
type GetSpendingReportOutput struct {
	Period PeriodKey
	Range  DateRange
	Report SpendingReport
}

// GetSpendingReportUseCase resolves the reporting period, fetches the
// user's transactions and aggregates them.
type GetSpendingReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetSpendingReportUseCase creates a new GetSpendingReportUseCase instance.
func NewGetSpendingReportUseCase(transactionRepo adapter.TransactionRepository) *GetSpendingReportUseCase {
	return &GetSpendingReportUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute builds the spending report for the requested period. A fetch
// failure degrades to an empty report: the analytics view is never a
// blocking failure, and the distinction from a genuinely empty history
// is carried in the log only.
func (uc *GetSpendingReportUseCase) Execute(ctx context.Context, input GetSpendingReportInput) (*GetSpendingReportOutput, error) {
	dateRange := ResolvePeriod(input.Period, uc.now())

	transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, dateRange.Start, dateRange.End)
	if err != nil {
		slog.Error("Failed to fetch transactions for spending report",
			"user_id", input.UserID,
			"period", input.Period,
			"error", err,
		)
		transactions = nil
	}

	return &GetSpendingReportOutput{
		Period: input.Period,
		Range:  dateRange,
		Report: Aggregate(transactions, dateRange),
	}, nil
}
