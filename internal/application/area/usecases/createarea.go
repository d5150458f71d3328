package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type CreateAreaCommand struct {
	UserID    uint
	Name      string
	Latitude  float64
	Longitude float64
}

type CreateAreaUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewCreateAreaUseCase(areaRepo area.Repository, logger logger.Interface) *CreateAreaUseCase {
	return &CreateAreaUseCase{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

func (uc *CreateAreaUseCase) Execute(ctx context.Context, cmd CreateAreaCommand) (*area.Area, error) {
	a, err := area.NewArea(cmd.UserID, cmd.Name, cmd.Latitude, cmd.Longitude)
	if err != nil {
		return nil, errors.NewValidationError("invalid area data", err.Error())
	}

	if err := uc.areaRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist area", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to persist area: %w", err)
	}

	uc.logger.Infow("area created", "user_id", cmd.UserID, "area_sid", a.SID())
	return a, nil
}
