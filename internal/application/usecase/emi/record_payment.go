package emi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording an installment payment.
type RecordPaymentInput struct {
	UserID uuid.UUID
	EMIID  uuid.UUID
}

// RecordPaymentOutput represents the EMI after the payment.
type RecordPaymentOutput struct {
	EMI *entity.EMI
}

// RecordPaymentUseCase marks one installment of an EMI as paid.
type RecordPaymentUseCase struct {
	emiRepo adapter.EMIRepository
	events  event.Publisher
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(emiRepo adapter.EMIRepository, events event.Publisher) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		emiRepo: emiRepo,
		events:  events,
	}
}

// Execute decrements the remaining installments and rolls the due date.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	emi, err := uc.emiRepo.FindByID(ctx, input.EMIID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEMINotFound) {
			return nil, domainerror.NewEMIError(
				domainerror.ErrCodeEMINotFound,
				"emi not found",
				domainerror.ErrEMINotFound,
			)
		}
		return nil, fmt.Errorf("failed to fetch emi: %w", err)
	}
	if emi == nil || emi.UserID != input.UserID {
		return nil, domainerror.NewEMIError(
			domainerror.ErrCodeEMINotFound,
			"emi not found",
			domainerror.ErrEMINotFound,
		)
	}
	if !emi.IsOpen() {
		return nil, domainerror.NewEMIError(
			domainerror.ErrCodeEMISettled,
			"emi has no remaining installments",
			domainerror.ErrEMISettled,
		)
	}

	emi.RecordPayment()

	if err := uc.emiRepo.Update(ctx, emi); err != nil {
		return nil, fmt.Errorf("failed to update emi: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.EMIChanged, UserID: input.UserID})

	return &RecordPaymentOutput{EMI: emi}, nil
}
