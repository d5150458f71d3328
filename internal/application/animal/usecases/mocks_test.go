package usecases

import (
	"context"

	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type mockAnimalRepository struct {
	CreateFunc       func(ctx context.Context, a *animal.Animal) error
	GetByIDFunc      func(ctx context.Context, animalID uint) (*animal.Animal, error)
	GetByQRCodeFunc  func(ctx context.Context, qrCode string) (*animal.Animal, error)
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]*animal.Animal, error)
	UpdateFunc       func(ctx context.Context, a *animal.Animal) error
	DeleteFunc       func(ctx context.Context, animalID uint) error
}

func (m *mockAnimalRepository) Create(ctx context.Context, a *animal.Animal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAnimalRepository) GetByID(ctx context.Context, animalID uint) (*animal.Animal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, animalID)
	}
	return nil, nil
}

func (m *mockAnimalRepository) GetByQRCode(ctx context.Context, qrCode string) (*animal.Animal, error) {
	if m.GetByQRCodeFunc != nil {
		return m.GetByQRCodeFunc(ctx, qrCode)
	}
	return nil, nil
}

func (m *mockAnimalRepository) ListByUserID(ctx context.Context, userID uint) ([]*animal.Animal, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAnimalRepository) Update(ctx context.Context, a *animal.Animal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAnimalRepository) Delete(ctx context.Context, animalID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, animalID)
	}
	return nil
}

type mockAreaRepository struct {
	GetByIDFunc func(ctx context.Context, areaID uint) (*area.Area, error)
}

func (m *mockAreaRepository) Create(ctx context.Context, a *area.Area) error { return nil }

func (m *mockAreaRepository) GetByID(ctx context.Context, areaID uint) (*area.Area, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, areaID)
	}
	return nil, nil
}

func (m *mockAreaRepository) ListByUserID(ctx context.Context, userID uint) ([]*area.Area, error) {
	return nil, nil
}

func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error { return nil }
func (m *mockAreaRepository) Delete(ctx context.Context, areaID uint) error  { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
