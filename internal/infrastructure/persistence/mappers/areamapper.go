package mappers

import (
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
)

type AreaMapper interface {
	ToEntity(model *models.AreaModel) (*area.Area, error)
	ToModel(entity *area.Area) *models.AreaModel
	ToEntities(models []*models.AreaModel) ([]*area.Area, error)
}

type AreaMapperImpl struct{}

func NewAreaMapper() AreaMapper {
	return &AreaMapperImpl{}
}

func (m *AreaMapperImpl) ToEntity(model *models.AreaModel) (*area.Area, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := area.ReconstructArea(
		model.ID,
		model.SID,
		model.UserID,
		model.Name,
		model.Latitude,
		model.Longitude,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct area entity: %w", err)
	}

	return entity, nil
}

func (m *AreaMapperImpl) ToModel(entity *area.Area) *models.AreaModel {
	if entity == nil {
		return nil
	}

	return &models.AreaModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		Name:      entity.Name(),
		Latitude:  entity.Latitude(),
		Longitude: entity.Longitude(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *AreaMapperImpl) ToEntities(areaModels []*models.AreaModel) ([]*area.Area, error) {
	entities := make([]*area.Area, 0, len(areaModels))
	for _, model := range areaModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
