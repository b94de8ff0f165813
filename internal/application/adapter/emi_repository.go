// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/domain/entity"
)

// EMIRepository defines the interface for EMI persistence operations.
type EMIRepository interface {
	// Create creates a new EMI in the database.
	Create(ctx context.Context, emi *entity.EMI) error

	// FindByID retrieves an EMI by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EMI, error)

	// FindByUser retrieves all EMIs for a user, soonest due first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EMI, error)

	// CountOpenByUser counts EMIs with remaining installments for a user.
	CountOpenByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing EMI.
	Update(ctx context.Context, emi *entity.EMI) error

	// Delete soft-deletes an EMI owned by the user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
