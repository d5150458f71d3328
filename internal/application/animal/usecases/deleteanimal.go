package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type DeleteAnimalUseCase struct {
	animalRepo animal.Repository
	logger     logger.Interface
}

func NewDeleteAnimalUseCase(animalRepo animal.Repository, logger logger.Interface) *DeleteAnimalUseCase {
	return &DeleteAnimalUseCase{
		animalRepo: animalRepo,
		logger:     logger,
	}
}

func (uc *DeleteAnimalUseCase) Execute(ctx context.Context, userID, animalID uint) error {
	a, err := uc.animalRepo.GetByID(ctx, animalID)
	if err != nil {
		uc.logger.Errorw("failed to load animal", "error", err, "animal_id", animalID)
		return fmt.Errorf("failed to load animal: %w", err)
	}
	if a == nil || a.UserID() != userID {
		return errors.NewNotFoundError("animal not found")
	}

	if err := uc.animalRepo.Delete(ctx, animalID); err != nil {
		uc.logger.Errorw("failed to delete animal", "error", err, "animal_sid", a.SID())
		return fmt.Errorf("failed to delete animal: %w", err)
	}

	uc.logger.Infow("animal deleted", "user_id", userID, "animal_sid", a.SID())
	return nil
}
