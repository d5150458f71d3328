package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type RegisterAnimalCommand struct {
	UserID     uint
	Name       string
	AnimalType billing.AnimalType
	QRCode     string
	AreaID     *uint
}

// RegisterAnimalUseCase registers a scanned QR tag as a tracked animal.
type RegisterAnimalUseCase struct {
	animalRepo animal.Repository
	areaRepo   area.Repository
	logger     logger.Interface
}

func NewRegisterAnimalUseCase(animalRepo animal.Repository, areaRepo area.Repository, logger logger.Interface) *RegisterAnimalUseCase {
	return &RegisterAnimalUseCase{
		animalRepo: animalRepo,
		areaRepo:   areaRepo,
		logger:     logger,
	}
}

func (uc *RegisterAnimalUseCase) Execute(ctx context.Context, cmd RegisterAnimalCommand) (*animal.Animal, error) {
	existing, err := uc.animalRepo.GetByQRCode(ctx, cmd.QRCode)
	if err != nil {
		uc.logger.Errorw("failed to check QR code", "error", err)
		return nil, fmt.Errorf("failed to check QR code: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("QR tag is already registered")
	}

	a, err := animal.NewAnimal(cmd.UserID, cmd.Name, cmd.AnimalType, cmd.QRCode)
	if err != nil {
		return nil, errors.NewValidationError("invalid animal data", err.Error())
	}

	if cmd.AreaID != nil {
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

	if err := uc.animalRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist animal", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to persist animal: %w", err)
	}

	uc.logger.Infow("animal registered",
		"user_id", cmd.UserID,
		"animal_sid", a.SID(),
		"animal_type", a.Type(),
	)

	return a, nil
}
