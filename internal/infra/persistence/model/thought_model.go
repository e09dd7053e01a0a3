package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ThoughtModel mirrors the 'thoughts' table. Tags live in a JSONB column so
// the tag filter can use containment (@>); hearts carries a check
// constraint enforcing the non-negative invariant at the store level.
type ThoughtModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Message   string                      `gorm:"type:varchar(140);not null"`
	Tags      datatypes.JSONSlice[string] `gorm:"not null"`
	Hearts    int                         `gorm:"not null;default:0;check:hearts >= 0"`
	AuthorID  uuid.UUID                   `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time                   `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThoughtModel) TableName() string {
	return "thoughts"
}
