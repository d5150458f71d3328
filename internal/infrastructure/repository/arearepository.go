package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/mappers"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type AreaRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AreaMapper
	logger logger.Interface
}

func NewAreaRepository(db *gorm.DB, logger logger.Interface) area.Repository {
	return &AreaRepositoryImpl{
		db:     db,
		mapper: mappers.NewAreaMapper(),
		logger: logger,
	}
}

func (r *AreaRepositoryImpl) Create(ctx context.Context, entity *area.Area) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create area in database", "error", err)
		return fmt.Errorf("failed to create area: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set area ID: %w", err)
	}

	return nil
}

func (r *AreaRepositoryImpl) GetByID(ctx context.Context, areaID uint) (*area.Area, error) {
	var model models.AreaModel

	if err := r.db.WithContext(ctx).First(&model, areaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get area by ID", "area_id", areaID, "error", err)
		return nil, fmt.Errorf("failed to get area: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AreaRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*area.Area, error) {
	var areaModels []*models.AreaModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&areaModels).Error
	if err != nil {
		r.logger.Errorw("failed to list areas", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}

	return r.mapper.ToEntities(areaModels)
}

func (r *AreaRepositoryImpl) Update(ctx context.Context, entity *area.Area) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.AreaModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"latitude":   model.Latitude,
			"longitude":  model.Longitude,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update area", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update area: %w", result.Error)
	}

	return nil
}

func (r *AreaRepositoryImpl) Delete(ctx context.Context, areaID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.AreaModel{}, areaID).Error; err != nil {
		r.logger.Errorw("failed to delete area", "area_id", areaID, "error", err)
		return fmt.Errorf("failed to delete area: %w", err)
	}

	return nil
}
