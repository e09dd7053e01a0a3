// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"thoughts/internal/domain/entity"
	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/domain/repository"
	"thoughts/internal/domain/service"
	"thoughts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenGenerator
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenGenerator
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

// Register creates a new account with a salted password hash and a freshly
// minted access token. The user name is lowercased before the uniqueness
// check so registration is case-insensitive.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	userName := entity.NormalizeUserName(input.UserName)

	_, err := srv.userRepo.FindByUserName(ctx, userName)
	if err == nil {
		return nil, domainerrors.ErrUserNameTaken.WrapMessage("user name already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check user name availability", slog.String("userName", userName), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("user name lookup failed")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("password hashing failed")
	}

	accessToken, err := srv.tokens.Generate()
	if err != nil {
		srv.logger.Error("Failed to generate access token", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("token generation failed")
	}

	user := &entity.User{
		UserName:     userName,
		PasswordHash: passwordHash,
		AccessToken:  accessToken,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the lookup above; the
		// store's uniqueness constraint settles the race.
		if errors.Is(err, repository.ErrUserNameTaken) {
			return nil, domainerrors.ErrUserNameTaken.WrapMessage("user name already registered")
		}
		srv.logger.Error("Failed to create user", slog.String("userName", userName), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("user insert failed")
	}

	srv.logger.Info("User registered", slog.Any("userID", user.ID), slog.String("userName", userName))

	return &usecase.RegisterOutput{
		ID:          user.ID,
		AccessToken: user.AccessToken,
	}, nil
}

// Login verifies the supplied password against the stored hash and returns
// the static bearer credential. An unknown user name yields 404, a password
// mismatch 401.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	userName := entity.NormalizeUserName(input.UserName)

	user, err := srv.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("unknown user name")
		}
		srv.logger.Error("Failed to look up user during login", slog.String("userName", userName), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("user lookup failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Password mismatch during login", slog.String("userName", userName))

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("password mismatch")
	}

	return &usecase.LoginOutput{
		ID:          user.ID,
		UserName:    user.UserName,
		AccessToken: user.AccessToken,
	}, nil
}
