// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget with its allocations.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget with allocations by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user, allocations preloaded,
	// newest month first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update replaces a budget's fields and allocation set.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget owned by the user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
