package auth

import (
	"context"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"
	"thoughts/internal/domain/service"
	"thoughts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtVerifier is the substitutable stronger credential scheme: instead of
// an opaque token stored per user, the Authorization header carries a
// signed HS256 token whose subject is the user id. Selected via
// auth.scheme in the configuration; the route layer is unaware of which
// scheme is active.
type jwtVerifier struct {
	secret   string
	userRepo repository.UserRepository
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(secret string, userRepo repository.UserRepository) (service.CredentialVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret:   secret,
		userRepo: userRepo,
	}, nil
}

// Verify parses and validates the signed token, then loads the subject user.
func (v *jwtVerifier) Verify(ctx context.Context, credential string) (*entity.User, error) {
	if credential == "" {
		return nil, repository.ErrUserNotFound
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(v.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, repository.ErrUserNotFound
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return v.userRepo.FindByID(ctx, userID)
}
