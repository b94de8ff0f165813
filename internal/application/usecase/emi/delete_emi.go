package emi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// DeleteEMIInput represents the input for deleting an EMI.
type DeleteEMIInput struct {
	UserID uuid.UUID
	EMIID  uuid.UUID
}

// DeleteEMIUseCase handles EMI deletion.
type DeleteEMIUseCase struct {
	emiRepo adapter.EMIRepository
	events  event.Publisher
}

// NewDeleteEMIUseCase creates a new DeleteEMIUseCase instance.
func NewDeleteEMIUseCase(emiRepo adapter.EMIRepository, events event.Publisher) *DeleteEMIUseCase {
	return &DeleteEMIUseCase{
		emiRepo: emiRepo,
		events:  events,
	}
}

// Execute soft-deletes the EMI if the user owns it.
func (uc *DeleteEMIUseCase) Execute(ctx context.Context, input DeleteEMIInput) error {
	if err := uc.emiRepo.Delete(ctx, input.EMIID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrEMINotFound) {
			return domainerror.NewEMIError(
				domainerror.ErrCodeEMINotFound,
				"emi not found",
				domainerror.ErrEMINotFound,
			)
		}
		return fmt.Errorf("failed to delete emi: %w", err)
	}

	uc.events.Publish(event.Event{Type: event.EMIChanged, UserID: input.UserID})

	return nil
}
