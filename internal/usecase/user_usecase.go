// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's id and bearer credential.
// The password and its hash are never part of any output.
type RegisterOutput struct {
	ID          uuid.UUID `json:"id"`
	AccessToken string    `json:"accessToken"`
}

// LoginOutput returns the identity and bearer credential after a successful login.
type LoginOutput struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"userName"`
	AccessToken string    `json:"accessToken"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
