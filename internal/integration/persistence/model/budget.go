package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletwise/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID               `gorm:"type:uuid;index;not null"`
	Name        string                  `gorm:"type:varchar(100);not null"`
	Month       string                  `gorm:"type:varchar(7);index;not null"`
	TotalIncome decimal.Decimal         `gorm:"type:decimal(15,2);not null"`
	Allocations []BudgetAllocationModel `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time               `gorm:"not null"`
	UpdatedAt   time.Time               `gorm:"not null"`
	DeletedAt   gorm.DeletedAt          `gorm:"index"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// BudgetAllocationModel represents the budget_allocations table.
type BudgetAllocationModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	CategoryKey string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the BudgetAllocationModel.
func (BudgetAllocationModel) TableName() string {
	return "budget_allocations"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	budget := &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Month:       m.Month,
		TotalIncome: m.TotalIncome,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		budget.DeletedAt = &deletedAt
	}
	for _, alloc := range m.Allocations {
		budget.Allocations = append(budget.Allocations, entity.BudgetAllocation{
			ID:          alloc.ID,
			BudgetID:    alloc.BudgetID,
			CategoryKey: alloc.CategoryKey,
			Amount:      alloc.Amount,
		})
	}
	return budget
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	m := &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Name:        budget.Name,
		Month:       budget.Month,
		TotalIncome: budget.TotalIncome,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
	for _, alloc := range budget.Allocations {
		m.Allocations = append(m.Allocations, BudgetAllocationModel{
			ID:          alloc.ID,
			BudgetID:    alloc.BudgetID,
			CategoryKey: alloc.CategoryKey,
			Amount:      alloc.Amount,
		})
	}
	return m
}
