// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardSummary holds the headline totals shown on the dashboard.
type DashboardSummary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	UpcomingEMICount int             `json:"upcoming_emi_count"`
}

// SummaryCache caches computed dashboard summaries per user.
type SummaryCache interface {
	// Get returns the cached summary for a user, or (nil, nil) on miss.
	Get(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error)

	// Set stores a summary for a user with the configured TTL.
	Set(ctx context.Context, userID uuid.UUID, summary *DashboardSummary) error

	// Invalidate drops the cached summary for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
