package usecases

import (
	"context"
	"fmt"

	subusecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	ExpiresIn    int64
	Subscription *subusecases.SubscriptionStatusResult
}

// LoginUseCase authenticates by email and password and returns the
// access token together with the subscription read model, so the client
// can route straight to checkout when payment is due.
type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenIssuer    TokenIssuer
	getStatus      *subusecases.GetStatusUseCase
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	getStatus *subusecases.GetStatusUseCase,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		getStatus:      getStatus,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user by email", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	// Generic message either way so the response does not reveal
	// whether the email exists.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokenIssuer.Generate(existing.UUID())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	status, err := uc.getStatus.Execute(ctx, existing.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to load subscription status", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginResult{
		User:         existing,
		AccessToken:  token,
		ExpiresIn:    expiresIn,
		Subscription: status,
	}, nil
}
