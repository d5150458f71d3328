package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type ListAnimalsUseCase struct {
	animalRepo animal.Repository
	logger     logger.Interface
}

func NewListAnimalsUseCase(animalRepo animal.Repository, logger logger.Interface) *ListAnimalsUseCase {
	return &ListAnimalsUseCase{
		animalRepo: animalRepo,
		logger:     logger,
	}
}

func (uc *ListAnimalsUseCase) Execute(ctx context.Context, userID uint) ([]*animal.Animal, error) {
	animals, err := uc.animalRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list animals", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}
