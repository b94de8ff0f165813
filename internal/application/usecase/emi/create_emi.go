// Package emi contains the installment obligation use cases.
package emi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// CreateEMIInput represents the input for registering an installment plan.
type CreateEMIInput struct {
	UserID        uuid.UUID
	Lender        string
	MonthlyAmount decimal.Decimal
	TotalMonths   int
	NextDueDate   time.Time
}

// CreateEMIOutput represents the registered EMI.
type CreateEMIOutput struct {
	EMI *entity.EMI
}

// CreateEMIUseCase handles EMI registration.
type CreateEMIUseCase struct {
	emiRepo adapter.EMIRepository
	events  event.Publisher
}

// NewCreateEMIUseCase creates a new CreateEMIUseCase instance.
func NewCreateEMIUseCase(emiRepo adapter.EMIRepository, events event.Publisher) *CreateEMIUseCase {
	return &CreateEMIUseCase{
		emiRepo: emiRepo,
		events:  events,
	}
}

// Execute validates and persists a new EMI, then announces the change.
func (uc *CreateEMIUseCase) Execute(ctx context.Context, input CreateEMIInput) (*CreateEMIOutput, error) {
	if input.TotalMonths <= 0 {
		return nil, domainerror.NewEMIError(
			domainerror.ErrCodeInvalidMonths,
			"total months must be positive",
			domainerror.ErrInvalidMonths,
		)
	}
	if !input.MonthlyAmount.IsPositive() {
		return nil, domainerror.NewEMIError(
			domainerror.ErrCodeInvalidMonthlyAmount,
			"monthly amount must be positive",
			domainerror.ErrInvalidMonthlyAmount,
		)
	}

	emi := entity.NewEMI(input.UserID, input.Lender, input.MonthlyAmount, input.TotalMonths, input.NextDueDate)

	if err := uc.emiRepo.Create(ctx, emi); err != nil {
		return nil, fmt.Errorf("failed to create emi: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.EMIChanged, UserID: input.UserID})

	return &CreateEMIOutput{EMI: emi}, nil
}
