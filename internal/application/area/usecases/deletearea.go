package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// DeleteAreaUseCase removes a grazing area and clears the assignment
// from any animal still pinned to it.
type DeleteAreaUseCase struct {
	areaRepo   area.Repository
	animalRepo animal.Repository
	logger     logger.Interface
}

func NewDeleteAreaUseCase(areaRepo area.Repository, animalRepo animal.Repository, logger logger.Interface) *DeleteAreaUseCase {
	return &DeleteAreaUseCase{
		areaRepo:   areaRepo,
		animalRepo: animalRepo,
		logger:     logger,
	}
}

func (uc *DeleteAreaUseCase) Execute(ctx context.Context, userID, areaID uint) error {
	a, err := uc.areaRepo.GetByID(ctx, areaID)
	if err != nil {
		uc.logger.Errorw("failed to load area", "error", err, "area_id", areaID)
		return fmt.Errorf("failed to load area: %w", err)
	}
	if a == nil || a.UserID() != userID {
		return errors.NewNotFoundError("area not found")
	}

	animals, err := uc.animalRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list animals", "error", err, "user_id", userID)
		return fmt.Errorf("failed to list animals: %w", err)
	}
	for _, tracked := range animals {
		if tracked.AreaID() == nil || *tracked.AreaID() != areaID {
			continue
		}
		tracked.ClearArea()
		if err := uc.animalRepo.Update(ctx, tracked); err != nil {
			uc.logger.Errorw("failed to clear area assignment", "error", err, "animal_sid", tracked.SID())
			return fmt.Errorf("failed to clear area assignment: %w", err)
		}
	}

	if err := uc.areaRepo.Delete(ctx, areaID); err != nil {
		uc.logger.Errorw("failed to delete area", "error", err, "area_sid", a.SID())
		return fmt.Errorf("failed to delete area: %w", err)
	}

	uc.logger.Infow("area deleted", "user_id", userID, "area_sid", a.SID())
	return nil
}
