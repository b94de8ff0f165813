// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly budget with per-category allocations.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Month       string // Format: "YYYY-MM"
	TotalIncome decimal.Decimal
	Allocations []BudgetAllocation
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// BudgetAllocation is a planned amount for one category key within a budget.
type BudgetAllocation struct {
	ID          uuid.UUID
	BudgetID    uuid.UUID
	CategoryKey string
	Amount      decimal.Decimal
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, name, month string, totalIncome decimal.Decimal, allocations []BudgetAllocation) *Budget {
	now := time.Now().UTC()
	budget := &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Month:       month,
		TotalIncome: totalIncome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, alloc := range allocations {
		budget.Allocations = append(budget.Allocations, BudgetAllocation{
			ID:          uuid.New(),
			BudgetID:    budget.ID,
			CategoryKey: alloc.CategoryKey,
			Amount:      alloc.Amount,
		})
	}
	return budget
}

// AllocationFor returns the allocation for the given category key, if any.
func (b *Budget) AllocationFor(categoryKey string) (*BudgetAllocation, bool) {
	for i := range b.Allocations {
		if b.Allocations[i].CategoryKey == categoryKey {
			return &b.Allocations[i], true
		}
	}
	return nil, false
}
