// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindOrCreateByName retrieves a category by name for the user,
	// creating it when absent.
	FindOrCreateByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)

	// ExistsByName reports whether the user already has a category with
	// the given name.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Delete soft-deletes a category.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
