// Package budget contains the monthly budget management use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Name        string
	Month       string
	TotalIncome decimal.Decimal
	Allocations []entity.BudgetAllocation
}

// CreateBudgetOutput represents the created budget.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	events     event.Publisher
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, events event.Publisher) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		events:     events,
	}
}

// Execute validates and persists a new budget, then announces the change.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetFields(input.Month, input.TotalIncome, input.Allocations); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, input.Name, input.Month, input.TotalIncome, input.Allocations)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.BudgetChanged, UserID: input.UserID})

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateBudgetFields checks the shared budget invariants.
func validateBudgetFields(month string, totalIncome decimal.Decimal, allocations []entity.BudgetAllocation) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if totalIncome.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeIncome,
			"total income must not be negative",
			domainerror.ErrNegativeIncome,
		)
	}
	seen := make(map[string]struct{}, len(allocations))
	for _, alloc := range allocations {
		if alloc.Amount.IsNegative() {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeAllocation,
				"allocation amount must not be negative",
				domainerror.ErrNegativeAllocation,
			)
		}
		if _, dup := seen[alloc.CategoryKey]; dup {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateAllocation,
				"duplicate allocation for category "+alloc.CategoryKey,
				domainerror.ErrDuplicateAllocation,
			)
		}
		seen[alloc.CategoryKey] = struct{}{}
	}
	return nil
}
