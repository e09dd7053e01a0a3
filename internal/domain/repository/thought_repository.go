package repository

import (
	"context"
	"errors"
	"strings"

	"thoughts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrThoughtNotFound is returned when no thought matches the id, or when an
// ownership-scoped operation matched nothing. The two cases are deliberately
// not distinguished so callers cannot probe for other users' thoughts.
var ErrThoughtNotFound = errors.New("thought not found")

// SortKey identifies a sortable thought field.
type SortKey string

// The whitelisted sort keys.
const (
	SortCreatedAt SortKey = "createdAt"
	SortHearts    SortKey = "hearts"
	SortMessage   SortKey = "message"
)

// Sort describes the ordering of a listing query.
type Sort struct {
	Key        SortKey
	Descending bool
}

// DefaultSort orders by most recent first.
var DefaultSort = Sort{Key: SortCreatedAt, Descending: true}

// ParseSort interprets a client sort string such as "-createdAt" or
// "hearts". A leading '-' means descending. Unknown keys fall back to the
// default ordering rather than erroring.
func ParseSort(raw string) Sort {
	if raw == "" {
		return DefaultSort
	}

	descending := strings.HasPrefix(raw, "-")
	key := SortKey(strings.TrimPrefix(raw, "-"))
	switch key {
	case SortCreatedAt, SortHearts, SortMessage:
		return Sort{Key: key, Descending: descending}
	default:
		return DefaultSort
	}
}

// ThoughtQuery is the filter predicate for listing thoughts. Nil fields are
// ignored; set fields combine with AND semantics.
type ThoughtQuery struct {
	Tag       *entity.Tag // exact match against the tag set
	MinHearts *int        // inclusive lower bound on hearts
	AuthorID  *uuid.UUID  // restrict to a single author
}

// ThoughtRepository defines the persistence operations for thoughts.
type ThoughtRepository interface {
	// Find returns the thoughts matching the query, ordered by sort, with
	// skip/limit pagination applied.
	Find(ctx context.Context, query ThoughtQuery, sort Sort, skip, limit int) ([]*entity.Thought, error)

	// Count returns the total number of thoughts matching the query,
	// independent of pagination.
	Count(ctx context.Context, query ThoughtQuery) (int64, error)

	// FindByID retrieves a single thought by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Thought, error)

	// Insert persists a new thought and fills in its generated fields.
	Insert(ctx context.Context, thought *entity.Thought) error

	// UpdateMessage replaces the message of the thought owned by authorID
	// and returns the updated record. ErrThoughtNotFound covers both an
	// absent id and an ownership mismatch.
	UpdateMessage(ctx context.Context, id, authorID uuid.UUID, message string) (*entity.Thought, error)

	// DeleteOwned removes the thought owned by authorID and returns the
	// deleted record. ErrThoughtNotFound covers both an absent id and an
	// ownership mismatch.
	DeleteOwned(ctx context.Context, id, authorID uuid.UUID) (*entity.Thought, error)

	// IncrementHearts atomically adds one to the like counter and returns
	// the updated record.
	IncrementHearts(ctx context.Context, id uuid.UUID) (*entity.Thought, error)
}
