package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/domain/entity"
)

// AllocationRequest is one planned category amount in a budget request.
type AllocationRequest struct {
	CategoryKey string  `json:"category_key" binding:"required"`
	Amount      float64 `json:"amount"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=100"`
	Month       string              `json:"month" binding:"required"`
	TotalIncome float64             `json:"total_income"`
	Allocations []AllocationRequest `json:"allocations"`
}

// UpdateBudgetRequest represents the request body for partial budget
// updates. Absent fields leave the stored value untouched.
type UpdateBudgetRequest struct {
	Name        *string            `json:"name,omitempty"`
	Month       *string            `json:"month,omitempty"`
	TotalIncome *float64           `json:"total_income,omitempty"`
	Income      *float64           `json:"income,omitempty"`
	Expenses    map[string]float64 `json:"expenses,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

// Draft converts the sparse assistant-style fields of the request into
// a budget draft, or nil when none were provided.
func (r *UpdateBudgetRequest) Draft() *entity.BudgetDraft {
	if r.Income == nil && len(r.Expenses) == 0 && len(r.Suggestions) == 0 {
		return nil
	}
	draft := &entity.BudgetDraft{Suggestions: r.Suggestions}
	if r.Income != nil {
		income := decimal.NewFromFloat(*r.Income)
		draft.Income = &income
	}
	if len(r.Expenses) > 0 {
		draft.Expenses = make(map[string]decimal.Decimal, len(r.Expenses))
		for key, amount := range r.Expenses {
			draft.Expenses[key] = decimal.NewFromFloat(amount)
		}
	}
	return draft
}

// AllocationResponse is one planned category amount in a budget response.
type AllocationResponse struct {
	CategoryKey string `json:"category_key"`
	Amount      string `json:"amount"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Month       string               `json:"month"`
	TotalIncome string               `json:"total_income"`
	Allocations []AllocationResponse `json:"allocations"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// BudgetListResponse wraps a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget entity to its API representation.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	allocations := make([]AllocationResponse, len(budget.Allocations))
	for i, a := range budget.Allocations {
		allocations[i] = AllocationResponse{
			CategoryKey: a.CategoryKey,
			Amount:      a.Amount.String(),
		}
	}
	return BudgetResponse{
		ID:          budget.ID.String(),
		Name:        budget.Name,
		Month:       budget.Month,
		TotalIncome: budget.TotalIncome.String(),
		Allocations: allocations,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}
