package mappers

import (
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
)

type AnimalMapper interface {
	ToEntity(model *models.AnimalModel) (*animal.Animal, error)
	ToModel(entity *animal.Animal) *models.AnimalModel
	ToEntities(models []*models.AnimalModel) ([]*animal.Animal, error)
}

type AnimalMapperImpl struct{}

func NewAnimalMapper() AnimalMapper {
	return &AnimalMapperImpl{}
}

func (m *AnimalMapperImpl) ToEntity(model *models.AnimalModel) (*animal.Animal, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := animal.ReconstructAnimal(
		model.ID,
		model.SID,
		model.UserID,
		model.Name,
		billing.AnimalType(model.AnimalType),
		model.QRCode,
		model.AreaID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct animal entity: %w", err)
	}

	return entity, nil
}

func (m *AnimalMapperImpl) ToModel(entity *animal.Animal) *models.AnimalModel {
	if entity == nil {
		return nil
	}

	return &models.AnimalModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		UserID:     entity.UserID(),
		Name:       entity.Name(),
		AnimalType: string(entity.Type()),
		QRCode:     entity.QRCode(),
		AreaID:     entity.AreaID(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *AnimalMapperImpl) ToEntities(animalModels []*models.AnimalModel) ([]*animal.Animal, error) {
	entities := make([]*animal.Animal, 0, len(animalModels))
	for _, model := range animalModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
