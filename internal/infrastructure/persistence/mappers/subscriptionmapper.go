package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	var counts billing.Counts
	if model.AnimalCounts != nil {
		if err := json.Unmarshal(model.AnimalCounts, &counts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal animal counts: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		UserID:            model.UserID,
		AnimalCounts:      counts,
		MonthlyPrice:      model.MonthlyPrice,
		Status:            status,
		TrialStart:        model.TrialStart,
		TrialEnd:          model.TrialEnd,
		SubscriptionStart: model.SubscriptionStart,
		SubscriptionEnd:   model.SubscriptionEnd,
		SessionToken:      model.SessionToken,
		GatewayRef:        model.GatewayRef,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var countsJSON datatypes.JSON
	if counts := entity.AnimalCounts(); len(counts) > 0 {
		data, err := json.Marshal(counts)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal animal counts: %w", err)
		}
		countsJSON = data
	}

	return &models.SubscriptionModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		UserID:            entity.UserID(),
		AnimalCounts:      countsJSON,
		MonthlyPrice:      entity.MonthlyPrice(),
		Status:            string(entity.Status()),
		TrialStart:        entity.TrialStart(),
		TrialEnd:          entity.TrialEnd(),
		SubscriptionStart: entity.SubscriptionStart(),
		SubscriptionEnd:   entity.SubscriptionEnd(),
		SessionToken:      entity.SessionToken(),
		GatewayRef:        entity.GatewayRef(),
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
