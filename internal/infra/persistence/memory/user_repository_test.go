package memory

import (
	"context"
	"testing"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookups(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{
		UserName:     "frida",
		PasswordHash: "hashed",
		AccessToken:  "token-abc",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "frida", byID.UserName)

	byName, err := repo.FindByUserName(ctx, "frida")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byToken, err := repo.FindByAccessToken(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)
}

func TestUserRepository_DuplicateUserName(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{UserName: "frida"}))

	err := repo.Create(ctx, &entity.User{UserName: "frida"})
	assert.ErrorIs(t, err, repository.ErrUserNameTaken)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUserName(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByAccessToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
