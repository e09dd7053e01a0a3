package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/infra/auth"
	"thoughts/internal/infra/persistence/memory"
	"thoughts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest() usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: memory.NewUserRepository(),
		Hasher:   auth.NewBcryptHasher(4),
		Tokens:   auth.NewAccessTokenGenerator(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserServiceForTest()

	registered, err := svc.Register(ctx, &usecase.RegisterInput{
		UserName: "Alice",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "", registered.AccessToken)
	assert.Len(t, registered.AccessToken, 256)

	// Login is case-insensitive on the user name.
	loggedIn, err := svc.Login(ctx, &usecase.LoginInput{
		UserName: "ALICE",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Equal(t, "alice", loggedIn.UserName)
	assert.Equal(t, registered.AccessToken, loggedIn.AccessToken)
}

func TestUserService_RegisterDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := newUserServiceForTest()

	_, err := svc.Register(ctx, &usecase.RegisterInput{UserName: "bob", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &usecase.RegisterInput{UserName: "Bob", Password: "other"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNameTaken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestUserService_LoginUnknownUser(t *testing.T) {
	svc := newUserServiceForTest()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{UserName: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserServiceForTest()

	_, err := svc.Register(ctx, &usecase.RegisterInput{UserName: "carol", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &usecase.LoginInput{UserName: "carol", Password: "battery staple"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}
