package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/mappers"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type AnimalRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnimalMapper
	logger logger.Interface
}

func NewAnimalRepository(db *gorm.DB, logger logger.Interface) animal.Repository {
	return &AnimalRepositoryImpl{
		db:     db,
		mapper: mappers.NewAnimalMapper(),
		logger: logger,
	}
}

func (r *AnimalRepositoryImpl) Create(ctx context.Context, entity *animal.Animal) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create animal in database", "error", err)
		return fmt.Errorf("failed to create animal: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set animal ID: %w", err)
	}

	return nil
}

func (r *AnimalRepositoryImpl) GetByID(ctx context.Context, animalID uint) (*animal.Animal, error) {
	var model models.AnimalModel

	if err := r.db.WithContext(ctx).First(&model, animalID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get animal by ID", "animal_id", animalID, "error", err)
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AnimalRepositoryImpl) GetByQRCode(ctx context.Context, qrCode string) (*animal.Animal, error) {
	var model models.AnimalModel

	if err := r.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get animal by QR code", "error", err)
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AnimalRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*animal.Animal, error) {
	var animalModels []*models.AnimalModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&animalModels).Error
	if err != nil {
		r.logger.Errorw("failed to list animals", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	return r.mapper.ToEntities(animalModels)
}

func (r *AnimalRepositoryImpl) Update(ctx context.Context, entity *animal.Animal) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.AnimalModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"area_id":    model.AreaID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update animal", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update animal: %w", result.Error)
	}

	return nil
}

func (r *AnimalRepositoryImpl) Delete(ctx context.Context, animalID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.AnimalModel{}, animalID).Error; err != nil {
		r.logger.Errorw("failed to delete animal", "animal_id", animalID, "error", err)
		return fmt.Errorf("failed to delete animal: %w", err)
	}

	return nil
}
