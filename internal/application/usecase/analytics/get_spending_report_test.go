package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

type stubTransactionRepo struct {
	transactions []*entity.TransactionWithCategory
	err          error
}

func (s *stubTransactionRepo) Create(context.Context, *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepo) FindByUserAndRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.TransactionWithCategory, error) {
	return s.transactions, s.err
}

func (s *stubTransactionRepo) FindRecentByUser(context.Context, uuid.UUID, int) ([]*entity.TransactionWithCategory, error) {
	return s.transactions, s.err
}

func (s *stubTransactionRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func TestGetSpendingReport_AggregatesPeriod(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	tx := entity.NewTransaction(userID, nil, nil, decimal.NewFromInt(40), now.AddDate(0, 0, -1), "")

	uc := NewGetSpendingReportUseCase(&stubTransactionRepo{
		transactions: []*entity.TransactionWithCategory{{Transaction: tx}},
	})
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), GetSpendingReportInput{UserID: userID, Period: PeriodCurrent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Period != PeriodCurrent {
		t.Errorf("period = %s, want %s", output.Period, PeriodCurrent)
	}
	if !output.Report.TotalSpent.Equal(decimal.NewFromInt(40)) {
		t.Errorf("total spent = %s, want 40", output.Report.TotalSpent)
	}
}

// The report degrades to empty on a fetch failure instead of
// surfacing an error to the caller.
func TestGetSpendingReport_FetchFailureYieldsEmptyReport(t *testing.T) {
	uc := NewGetSpendingReportUseCase(&stubTransactionRepo{err: errors.New("connection refused")})

	output, err := uc.Execute(context.Background(), GetSpendingReportInput{UserID: uuid.New(), Period: PeriodLast3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Report.TotalSpent.IsZero() {
		t.Errorf("total spent = %s, want 0", output.Report.TotalSpent)
	}
	if len(output.Report.CategoryTotals) != 0 {
		t.Errorf("got %d category totals, want 0", len(output.Report.CategoryTotals))
	}
}
