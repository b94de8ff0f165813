// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a spending record in the WalletWise system.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BudgetID   *uuid.UUID // Optional link to the budget the spend counts against
	CategoryID *uuid.UUID // Optional, uncategorized spends roll up as Miscellaneous
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	budgetID *uuid.UUID,
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	note string,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionWithCategory pairs a transaction with its resolved category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// CategoryLabel returns the category name to aggregate under, falling
// back to the Miscellaneous label when the link is absent.
func (t *TransactionWithCategory) CategoryLabel() string {
	if t.Category == nil || t.Category.Name == "" {
		return MiscellaneousCategory
	}
	return t.Category.Name
}
