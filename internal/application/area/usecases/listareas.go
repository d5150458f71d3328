package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type ListAreasUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewListAreasUseCase(areaRepo area.Repository, logger logger.Interface) *ListAreasUseCase {
	return &ListAreasUseCase{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

func (uc *ListAreasUseCase) Execute(ctx context.Context, userID uint) ([]*area.Area, error) {
	areas, err := uc.areaRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list areas", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}
