// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EMI represents an equated monthly installment obligation.
type EMI struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Lender          string
	MonthlyAmount   decimal.Decimal
	TotalMonths     int
	RemainingMonths int
	NextDueDate     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewEMI creates a new EMI entity with all installments outstanding.
func NewEMI(userID uuid.UUID, lender string, monthlyAmount decimal.Decimal, totalMonths int, nextDueDate time.Time) *EMI {
	now := time.Now().UTC()
	return &EMI{
		ID:              uuid.New(),
		UserID:          userID,
		Lender:          lender,
		MonthlyAmount:   monthlyAmount,
		TotalMonths:     totalMonths,
		RemainingMonths: totalMonths,
		NextDueDate:     nextDueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsOpen reports whether installments remain outstanding.
func (e *EMI) IsOpen() bool {
	return e.RemainingMonths > 0
}

// RecordPayment decrements the remaining installment counter and rolls
// the due date forward one month. Already-settled EMIs are unchanged.
func (e *EMI) RecordPayment() {
	if e.RemainingMonths <= 0 {
		return
	}
	e.RemainingMonths--
	e.NextDueDate = e.NextDueDate.AddDate(0, 1, 0)
	e.UpdatedAt = time.Now().UTC()
}
