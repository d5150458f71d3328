package animal

import "context"

// Repository defines the persistence port for animals. Lookup methods
// return nil without error when no row matches.
type Repository interface {
	Create(ctx context.Context, a *Animal) error
	GetByID(ctx context.Context, animalID uint) (*Animal, error)
	GetByQRCode(ctx context.Context, qrCode string) (*Animal, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Animal, error)
	Update(ctx context.Context, a *Animal) error
	Delete(ctx context.Context, animalID uint) error
}
