// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can post, edit, delete and own thoughts.
// UserName is stored lowercase; PasswordHash and AccessToken are credential
// fields that must never be serialized to clients.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	UserName     string    // Unique login name, normalized to lowercase.
	PasswordHash string    // Salted one-way hash of the password.
	AccessToken  string    // Opaque static bearer credential, assigned at creation.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// NormalizeUserName lowercases a user name so lookups and the uniqueness
// constraint are case-insensitive.
func NormalizeUserName(name string) string {
	return strings.ToLower(name)
}
