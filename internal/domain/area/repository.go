package area

import "context"

// Repository defines the persistence port for grazing areas. Lookup
// methods return nil without error when no row matches.
type Repository interface {
	Create(ctx context.Context, a *Area) error
	GetByID(ctx context.Context, areaID uint) (*Area, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Area, error)
	Update(ctx context.Context, a *Area) error
	Delete(ctx context.Context, areaID uint) error
}
