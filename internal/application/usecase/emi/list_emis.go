package emi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/domain/entity"
)

// ListEMIsInput represents the input for listing a user's EMIs.
type ListEMIsInput struct {
	UserID uuid.UUID
}

// ListEMIsOutput represents the user's EMIs, soonest due first.
type ListEMIsOutput struct {
	EMIs []*entity.EMI
}

// ListEMIsUseCase handles EMI listing.
type ListEMIsUseCase struct {
	emiRepo adapter.EMIRepository
}

// NewListEMIsUseCase creates a new ListEMIsUseCase instance.
func NewListEMIsUseCase(emiRepo adapter.EMIRepository) *ListEMIsUseCase {
	return &ListEMIsUseCase{
		emiRepo: emiRepo,
	}
}

// Execute returns all EMIs owned by the user.
func (uc *ListEMIsUseCase) Execute(ctx context.Context, input ListEMIsInput) (*ListEMIsOutput, error) {
	emis, err := uc.emiRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emis: %w", err)
	}
	return &ListEMIsOutput{EMIs: emis}, nil
}
