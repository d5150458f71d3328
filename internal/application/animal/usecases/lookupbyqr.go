package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// LookupByQRUseCase resolves a scanned QR tag to the owning user's
// animal. Tags belonging to another herd resolve to not found.
type LookupByQRUseCase struct {
	animalRepo animal.Repository
	logger     logger.Interface
}

func NewLookupByQRUseCase(animalRepo animal.Repository, logger logger.Interface) *LookupByQRUseCase {
	return &LookupByQRUseCase{
		animalRepo: animalRepo,
		logger:     logger,
	}
}

func (uc *LookupByQRUseCase) Execute(ctx context.Context, userID uint, qrCode string) (*animal.Animal, error) {
	if qrCode == "" {
		return nil, errors.NewValidationError("QR tag code is required")
	}

	a, err := uc.animalRepo.GetByQRCode(ctx, qrCode)
	if err != nil {
		uc.logger.Errorw("failed to look up QR code", "error", err)
		return nil, fmt.Errorf("failed to look up QR code: %w", err)
	}
	if a == nil || a.UserID() != userID {
		return nil, errors.NewNotFoundError("animal not found")
	}
	return a, nil
}
