package dto

import (
	"time"

	"github.com/walletwise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a spend.
type CreateTransactionRequest struct {
	BudgetID *string    `json:"budget_id,omitempty"`
	Category string     `json:"category"`
	Amount   float64    `json:"amount" binding:"required"`
	Date     *time.Time `json:"date,omitempty"`
	Note     string     `json:"note"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	BudgetID  *string   `json:"budget_id,omitempty"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction with its resolved
// category to the API representation.
func ToTransactionResponse(txn *entity.TransactionWithCategory) TransactionResponse {
	resp := TransactionResponse{
		ID:        txn.Transaction.ID.String(),
		Category:  txn.CategoryLabel(),
		Amount:    txn.Transaction.Amount.String(),
		Date:      txn.Transaction.Date,
		Note:      txn.Transaction.Note,
		CreatedAt: txn.Transaction.CreatedAt,
	}
	if txn.Transaction.BudgetID != nil {
		id := txn.Transaction.BudgetID.String()
		resp.BudgetID = &id
	}
	return resp
}
