package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
	"github.com/walletwise/backend/internal/integration/persistence/model"
)

// emiRepository implements the adapter.EMIRepository interface.
type emiRepository struct {
	db *gorm.DB
}

// NewEMIRepository creates a new EMI repository instance.
func NewEMIRepository(db *gorm.DB) adapter.EMIRepository {
	return &emiRepository{
		db: db,
	}
}

// Create creates a new EMI in the database.
func (r *emiRepository) Create(ctx context.Context, emi *entity.EMI) error {
	emiModel := model.EMIFromEntity(emi)
	result := r.db.WithContext(ctx).Create(emiModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an EMI by its ID.
func (r *emiRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EMI, error) {
	var emiModel model.EMIModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&emiModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEMINotFound
		}
		return nil, result.Error
	}
	return emiModel.ToEntity(), nil
}

// FindByUser retrieves all EMIs for a user, soonest due first.
func (r *emiRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EMI, error) {
	var emiModels []model.EMIModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_due_date ASC").
		Find(&emiModels)
	if result.Error != nil {
		return nil, result.Error
	}

	emis := make([]*entity.EMI, len(emiModels))
	for i, em := range emiModels {
		emis[i] = em.ToEntity()
	}
	return emis, nil
}

// CountOpenByUser counts EMIs with remaining installments for a user.
func (r *emiRepository) CountOpenByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EMIModel{}).
		Where("user_id = ? AND remaining_months > 0", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// Update updates an existing EMI.
func (r *emiRepository) Update(ctx context.Context, emi *entity.EMI) error {
	emiModel := model.EMIFromEntity(emi)
	result := r.db.WithContext(ctx).Save(emiModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an EMI owned by the user.
func (r *emiRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.EMIModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEMINotFound
	}
	return nil
}
