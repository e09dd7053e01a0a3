// Package memory provides in-memory implementations of the repository
// interfaces. They back the test suites and double as a storage layer for
// local development without Postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository is a mutex-protected map keyed by user id.
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

// NewUserRepository builds an empty in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.User),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByUserName retrieves a single user by their (lowercase) user name.
func (repo *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.UserName == userName {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByAccessToken resolves a bearer token to the owning user.
func (repo *userRepository) FindByAccessToken(ctx context.Context, token string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.AccessToken == token {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user, assigning its id and timestamps. The user
// name uniqueness constraint is enforced under the same lock that inserts,
// mirroring the database unique index.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.users {
		if existing.UserName == user.UserName {
			return repository.ErrUserNameTaken
		}
	}

	now := time.Now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now
	repo.users[user.ID] = cloneUser(user)

	return nil
}

// cloneUser copies a user so callers cannot mutate the stored record.
func cloneUser(user *entity.User) *entity.User {
	copied := *user

	return &copied
}
