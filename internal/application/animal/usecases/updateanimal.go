package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type UpdateAnimalCommand struct {
	UserID   uint
	AnimalID uint
	// Name renames the animal when non-nil.
	Name *string
	// AreaID assigns a grazing area when non-nil; ClearArea removes
	// the current assignment instead.
	AreaID    *uint
	ClearArea bool
}

type UpdateAnimalUseCase struct {
	animalRepo animal.Repository
	areaRepo   area.Repository
	logger     logger.Interface
}

func NewUpdateAnimalUseCase(animalRepo animal.Repository, areaRepo area.Repository, logger logger.Interface) *UpdateAnimalUseCase {
	return &UpdateAnimalUseCase{
		animalRepo: animalRepo,
		areaRepo:   areaRepo,
		logger:     logger,
	}
}

func (uc *UpdateAnimalUseCase) Execute(ctx context.Context, cmd UpdateAnimalCommand) (*animal.Animal, error) {
	a, err := uc.animalRepo.GetByID(ctx, cmd.AnimalID)
	if err != nil {
		uc.logger.Errorw("failed to load animal", "error", err, "animal_id", cmd.AnimalID)
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if a == nil || a.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("animal not found")
	}

	if cmd.Name != nil {
		if err := a.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid animal name", err.Error())
		}
	}

	switch {
	case cmd.ClearArea:
		a.ClearArea()
	case cmd.AreaID != nil:
		grazing, err := uc.areaRepo.GetByID(ctx, *cmd.AreaID)
		if err != nil {
			uc.logger.Errorw("failed to load area", "error", err, "area_id", *cmd.AreaID)
			return nil, fmt.Errorf("failed to load area: %w", err)
		}
		if grazing == nil || grazing.UserID() != cmd.UserID {
			return nil, errors.NewNotFoundError("area not found")
		}
		if err := a.AssignArea(grazing.ID()); err != nil {
			return nil, errors.NewValidationError("invalid area assignment", err.Error())
		}
	}

	if err := uc.animalRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist animal", "error", err, "animal_sid", a.SID())
		return nil, fmt.Errorf("failed to persist animal: %w", err)
	}

	return a, nil
}
