package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type UpdateAreaCommand struct {
	UserID    uint
	AreaID    uint
	Name      *string
	Latitude  *float64
	Longitude *float64
}

type UpdateAreaUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewUpdateAreaUseCase(areaRepo area.Repository, logger logger.Interface) *UpdateAreaUseCase {
	return &UpdateAreaUseCase{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

func (uc *UpdateAreaUseCase) Execute(ctx context.Context, cmd UpdateAreaCommand) (*area.Area, error) {
	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		uc.logger.Errorw("failed to load area", "error", err, "area_id", cmd.AreaID)
		return nil, fmt.Errorf("failed to load area: %w", err)
	}
	if a == nil || a.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("area not found")
	}

	if cmd.Name != nil {
		if err := a.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid area name", err.Error())
		}
	}

	if cmd.Latitude != nil || cmd.Longitude != nil {
		lat := a.Latitude()
		lng := a.Longitude()
		if cmd.Latitude != nil {
			lat = *cmd.Latitude
		}
		if cmd.Longitude != nil {
			lng = *cmd.Longitude
		}
		if err := a.Relocate(lat, lng); err != nil {
			return nil, errors.NewValidationError("invalid coordinates", err.Error())
		}
	}

	if err := uc.areaRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist area", "error", err, "area_sid", a.SID())
		return nil, fmt.Errorf("failed to persist area: %w", err)
	}

	return a, nil
}
