package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletwise/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	BudgetID   *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Category   *CategoryModel  `gorm:"foreignKey:CategoryID"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"index;not null"`
	Note       string          `gorm:"type:varchar(500)"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	transaction := &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		BudgetID:   m.BudgetID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Date:       m.Date,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		transaction.DeletedAt = &deletedAt
	}
	return transaction
}

// ToEntityWithCategory converts the model with its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	out := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		out.Category = m.Category.ToEntity()
	}
	return out
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		BudgetID:   transaction.BudgetID,
		CategoryID: transaction.CategoryID,
		Amount:     transaction.Amount,
		Date:       transaction.Date,
		Note:       transaction.Note,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
