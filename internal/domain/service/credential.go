package service

import (
	"context"

	"thoughts/internal/domain/entity"
)

// TokenGenerator mints the static bearer credential assigned to a user at
// registration time.
type TokenGenerator interface {
	// Generate returns a new opaque token string.
	Generate() (string, error)
}

// CredentialVerifier resolves the raw Authorization header value to the
// authenticated user. It is the single seam between the auth scheme and the
// route layer; swapping in a stronger scheme (signed short-lived tokens)
// only requires another implementation of this interface.
type CredentialVerifier interface {
	// Verify looks up the user identified by the presented credential.
	// It returns repository.ErrUserNotFound semantics via a nil user and
	// a non-nil error when the credential does not resolve.
	Verify(ctx context.Context, credential string) (*entity.User, error)
}
