// Package model contains the GORM persistence models mirroring the
// database tables. They are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// gen_random_uuid(). The user name and access token both carry unique
// indexes: the former for case-insensitive registration (names are stored
// lowercase), the latter because the token is looked up on every
// authenticated request.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserName     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	AccessToken  string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
