package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// UpdateBudgetInput represents a partial budget update. Nil fields are
// left untouched; Draft, when set, is merged with the same semantics.
type UpdateBudgetInput struct {
	UserID      uuid.UUID
	BudgetID    uuid.UUID
	Name        *string
	Month       *string
	TotalIncome *decimal.Decimal
	Draft       *entity.BudgetDraft
}

// UpdateBudgetOutput represents the updated budget.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles partial budget updates, including merging
// assistant drafts. Fields absent from the input never overwrite what
// the user already entered.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	events     event.Publisher
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, events event.Publisher) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		events:     events,
	}
}

// Execute applies the present fields to the stored budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.findOwned(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}
	if input.Month != nil {
		budget.Month = *input.Month
	}
	if input.TotalIncome != nil {
		budget.TotalIncome = *input.TotalIncome
	}
	input.Draft.ApplyTo(budget)

	if err := validateBudgetFields(budget.Month, budget.TotalIncome, budget.Allocations); err != nil {
		return nil, err
	}

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.BudgetChanged, UserID: input.UserID})

	return &UpdateBudgetOutput{Budget: budget}, nil
}

func (uc *UpdateBudgetUseCase) findOwned(ctx context.Context, budgetID, userID uuid.UUID) (*entity.Budget, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	if budget == nil || budget.UserID != userID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return budget, nil
}
