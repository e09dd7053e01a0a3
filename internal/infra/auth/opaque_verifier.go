package auth

import (
	"context"
	"log/slog"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"
	"thoughts/internal/domain/service"
	"thoughts/internal/errors"
	"thoughts/internal/infra/cache"
)

// opaqueVerifier resolves the raw opaque bearer token against the user
// store, optionally consulting a Redis cache first. This is the default,
// wire-compatible credential scheme: the Authorization header carries the
// token verbatim, with no prefix.
type opaqueVerifier struct {
	userRepo repository.UserRepository
	cache    *cache.TokenCache // nil when caching is disabled
	logger   *slog.Logger
}

// NewOpaqueVerifier is the constructor for opaqueVerifier. The cache may be nil.
func NewOpaqueVerifier(userRepo repository.UserRepository, tokenCache *cache.TokenCache, logger *slog.Logger) service.CredentialVerifier {
	return &opaqueVerifier{
		userRepo: userRepo,
		cache:    tokenCache,
		logger:   logger,
	}
}

// Verify looks up the user whose access token equals the credential.
func (v *opaqueVerifier) Verify(ctx context.Context, credential string) (*entity.User, error) {
	if credential == "" {
		return nil, repository.ErrUserNotFound
	}

	if v.cache != nil {
		userID, hit, err := v.cache.Lookup(ctx, credential)
		if err != nil {
			// A broken cache must not take authentication down with it.
			v.logger.Warn("Token cache lookup failed, falling through to store", slog.Any("error", err))
		} else if hit {
			user, err := v.userRepo.FindByID(ctx, userID)
			if err == nil {
				return user, nil
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, errors.Wrap(err, "failed to load cached token user")
			}
			// Cached id no longer resolves; fall through to the token lookup.
		}
	}

	user, err := v.userRepo.FindByAccessToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	if v.cache != nil {
		if err := v.cache.Store(ctx, credential, user.ID); err != nil {
			v.logger.Warn("Failed to populate token cache", slog.Any("error", err))
		}
	}

	return user, nil
}
