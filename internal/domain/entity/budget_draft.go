// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetDraft is a sparse, partially populated budget extracted from
// free text. Absent fields are nil/empty and must never overwrite
// values the user has already entered.
type BudgetDraft struct {
	Income      *decimal.Decimal
	Expenses    map[string]decimal.Decimal
	Suggestions []string
}

// IsEmpty reports whether nothing was extracted into the draft.
func (d *BudgetDraft) IsEmpty() bool {
	return d == nil || (d.Income == nil && len(d.Expenses) == 0 && len(d.Suggestions) == 0)
}

// ApplyTo merges the draft into a budget: present fields replace the
// destination value, absent fields leave it untouched. Expense amounts
// update a matching allocation in place or append a new one.
func (d *BudgetDraft) ApplyTo(budget *Budget) {
	if d == nil || budget == nil {
		return
	}
	if d.Income != nil {
		budget.TotalIncome = *d.Income
	}
	for key, amount := range d.Expenses {
		if alloc, ok := budget.AllocationFor(key); ok {
			alloc.Amount = amount
			continue
		}
		budget.Allocations = append(budget.Allocations, BudgetAllocation{
			ID:          uuid.New(),
			BudgetID:    budget.ID,
			CategoryKey: key,
			Amount:      amount,
		})
	}
}
