package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/mappers"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created", "id", model.ID, "user_id", model.UserID)
	return nil
}

// Update persists the aggregate guarded by its version: the row is only
// written when nobody else bumped the version since this aggregate was
// loaded. A lost race surfaces as an error so the caller can reload.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, entity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"animal_counts":      model.AnimalCounts,
			"monthly_price":      model.MonthlyPrice,
			"status":             model.Status,
			"subscription_start": model.SubscriptionStart,
			"subscription_end":   model.SubscriptionEnd,
			"session_token":      model.SessionToken,
			"gateway_ref":        model.GatewayRef,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription %d was modified concurrently", model.ID)
	}

	r.logger.Infow("subscription updated", "id", model.ID, "status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetBySessionToken(ctx context.Context, token string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by session token", "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) FindExpired(ctx context.Context) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("status = ?", string(vo.StatusActive)).
		Where("subscription_end IS NOT NULL AND subscription_end < ?", time.Now()).
		Order("subscription_end ASC").
		Find(&subscriptionModels).Error
	if err != nil {
		r.logger.Errorw("failed to find lapsed subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find lapsed subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}
