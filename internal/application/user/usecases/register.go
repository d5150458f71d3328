package usecases

import (
	"context"
	"fmt"

	subusecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/domain/user"
	vo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Username     string
	Email        string
	Phone        string
	Address      string
	Password     string
	AnimalCounts billing.Counts
}

type RegisterResult struct {
	User         *user.User
	Subscription *subscription.Subscription
}

// RegisterUseCase creates the account together with its trial
// subscription. Every account starts in the free trial window.
type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	createTrial    *subusecases.CreateTrialUseCase
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	createTrial *subusecases.CreateTrialUseCase,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		createTrial:    createTrial,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Username, email, hash)
	if err != nil {
		return nil, errors.NewValidationError("invalid user data", err.Error())
	}
	newUser.UpdateContact(cmd.Phone, cmd.Address)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	sub, err := uc.createTrial.Execute(ctx, subusecases.CreateTrialCommand{
		UserID: newUser.ID(),
		Counts: cmd.AnimalCounts,
	})
	if err != nil {
		uc.logger.Errorw("failed to open trial subscription", "error", err, "user_id", newUser.ID())
		return nil, err
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"email", email.String(),
		"subscription_sid", sub.SID(),
	)

	return &RegisterResult{User: newUser, Subscription: sub}, nil
}
