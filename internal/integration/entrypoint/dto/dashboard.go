package dto

import "github.com/walletwise/backend/internal/application/adapter"

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	RemainingBalance string `json:"remaining_balance"`
	UpcomingEMICount int    `json:"upcoming_emi_count"`
}

// ToSummaryResponse converts a computed summary to its API representation.
func ToSummaryResponse(summary adapter.DashboardSummary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpenses:    summary.TotalExpenses.String(),
		RemainingBalance: summary.RemainingBalance.String(),
		UpcomingEMICount: summary.UpcomingEMICount,
	}
}
