package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletwise/backend/internal/domain/entity"
)

// EMIModel represents the emis table in the database.
type EMIModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	Lender          string          `gorm:"type:varchar(100);not null"`
	MonthlyAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalMonths     int             `gorm:"not null"`
	RemainingMonths int             `gorm:"not null"`
	NextDueDate     time.Time       `gorm:"index;not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the EMIModel.
func (EMIModel) TableName() string {
	return "emis"
}

// ToEntity converts an EMIModel to a domain EMI entity.
func (m *EMIModel) ToEntity() *entity.EMI {
	emi := &entity.EMI{
		ID:              m.ID,
		UserID:          m.UserID,
		Lender:          m.Lender,
		MonthlyAmount:   m.MonthlyAmount,
		TotalMonths:     m.TotalMonths,
		RemainingMonths: m.RemainingMonths,
		NextDueDate:     m.NextDueDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		emi.DeletedAt = &deletedAt
	}
	return emi
}

// EMIFromEntity creates an EMIModel from a domain EMI entity.
func EMIFromEntity(emi *entity.EMI) *EMIModel {
	return &EMIModel{
		ID:              emi.ID,
		UserID:          emi.UserID,
		Lender:          emi.Lender,
		MonthlyAmount:   emi.MonthlyAmount,
		TotalMonths:     emi.TotalMonths,
		RemainingMonths: emi.RemainingMonths,
		NextDueDate:     emi.NextDueDate,
		CreatedAt:       emi.CreatedAt,
		UpdatedAt:       emi.UpdatedAt,
	}
}
