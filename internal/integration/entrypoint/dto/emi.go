package dto

import (
	"time"

	"github.com/walletwise/backend/internal/domain/entity"
)

// CreateEMIRequest represents the request body for registering an EMI.
type CreateEMIRequest struct {
	Lender        string    `json:"lender" binding:"required,min=1,max=100"`
	MonthlyAmount float64   `json:"monthly_amount" binding:"required"`
	TotalMonths   int       `json:"total_months" binding:"required"`
	NextDueDate   time.Time `json:"next_due_date" binding:"required"`
}

// EMIResponse represents an EMI in API responses.
type EMIResponse struct {
	ID              string    `json:"id"`
	Lender          string    `json:"lender"`
	MonthlyAmount   string    `json:"monthly_amount"`
	TotalMonths     int       `json:"total_months"`
	RemainingMonths int       `json:"remaining_months"`
	NextDueDate     time.Time `json:"next_due_date"`
	Open            bool      `json:"open"`
	CreatedAt       time.Time `json:"created_at"`
}

// EMIListResponse wraps a list of EMIs.
type EMIListResponse struct {
	EMIs []EMIResponse `json:"emis"`
}

// ToEMIResponse converts an EMI entity to its API representation.
func ToEMIResponse(emi *entity.EMI) EMIResponse {
	return EMIResponse{
		ID:              emi.ID.String(),
		Lender:          emi.Lender,
		MonthlyAmount:   emi.MonthlyAmount.String(),
		TotalMonths:     emi.TotalMonths,
		RemainingMonths: emi.RemainingMonths,
		NextDueDate:     emi.NextDueDate,
		Open:            emi.IsOpen(),
		CreatedAt:       emi.CreatedAt,
	}
}
