package dto

import (
	"time"

	"github.com/walletwise/backend/internal/application/usecase/analytics"
)

// SpendingReportResponse represents a spending report in API responses.
type SpendingReportResponse struct {
	Period string                   `json:"period"`
	Start  time.Time                `json:"start"`
	End    time.Time                `json:"end"`
	Report analytics.SpendingReport `json:"report"`
}

// ToSpendingReportResponse converts a report use case output to its
// API representation.
func ToSpendingReportResponse(output *analytics.GetSpendingReportOutput) SpendingReportResponse {
	return SpendingReportResponse{
		Period: string(output.Period),
		Start:  output.Range.Start,
		End:    output.Range.End,
		Report: output.Report,
	}
}
