package mappers

import (
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/user"
	vo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email: %w", err)
	}

	entity, err := user.ReconstructUser(user.UserReconstructParams{
		ID:           model.ID,
		UUID:         model.UUID,
		Username:     model.Username,
		Email:        email,
		Phone:        model.Phone,
		Address:      model.Address,
		PasswordHash: model.PasswordHash,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		UUID:         entity.UUID(),
		Username:     entity.Username(),
		Email:        entity.Email().String(),
		Phone:        entity.Phone(),
		Address:      entity.Address(),
		PasswordHash: entity.PasswordHash(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
