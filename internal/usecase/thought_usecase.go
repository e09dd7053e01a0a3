package usecase

import (
	"context"
	"time"

	"thoughts/internal/domain/entity"

	"github.com/google/uuid"
)

// Listing defaults when the client omits pagination parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// --- Input DTOs ---

// ListThoughtsInput carries the filter, sort and pagination parameters for
// the listing endpoints. Zero Page/Limit fall back to the defaults; nil
// filters are ignored.
type ListThoughtsInput struct {
	Page      int
	Limit     int
	Tag       string     // raw tag filter, empty means no filter
	MinHearts *int       // inclusive hearts lower bound
	SortBy    string     // raw sort string, e.g. "-createdAt"
	ForceSort string     // fixed sort for the popular/recent endpoints, overrides SortBy
	AuthorID  *uuid.UUID // restrict to one author (by-user endpoint)
}

// CreateThoughtInput defines the data required to post a thought.
type CreateThoughtInput struct {
	Message  string   `json:"message"`
	Tags     []string `json:"tags"`
	AuthorID uuid.UUID
}

// EditThoughtInput defines the data required to edit a thought's message.
type EditThoughtInput struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	Message  string
}

// --- Output DTOs ---

// ThoughtView is the client-facing shape of a thought.
type ThoughtView struct {
	ID        uuid.UUID    `json:"id"`
	Message   string       `json:"message"`
	Tags      []entity.Tag `json:"tags"`
	Hearts    int          `json:"hearts"`
	Author    uuid.UUID    `json:"author"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ListThoughtsOutput is the paginated listing result.
type ListThoughtsOutput struct {
	Data        []*ThoughtView `json:"data"`
	TotalCount  int64          `json:"totalCount"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
}

// NewThoughtView maps a domain entity to its client-facing shape.
func NewThoughtView(thought *entity.Thought) *ThoughtView {
	return &ThoughtView{
		ID:        thought.ID,
		Message:   thought.Message,
		Tags:      thought.Tags,
		Hearts:    thought.Hearts,
		Author:    thought.AuthorID,
		CreatedAt: thought.CreatedAt,
	}
}

// ThoughtUsecase defines the interface for thought-related business operations.
type ThoughtUsecase interface {
	// List implements the shared listing contract: AND-combined filters,
	// whitelisted sort, offset pagination, and a total count computed
	// independently of the page window.
	List(ctx context.Context, input *ListThoughtsInput) (*ListThoughtsOutput, error)

	GetByID(ctx context.Context, id uuid.UUID) (*ThoughtView, error)
	Create(ctx context.Context, input *CreateThoughtInput) (*ThoughtView, error)
	Edit(ctx context.Context, input *EditThoughtInput) (*ThoughtView, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) (*ThoughtView, error)
	Like(ctx context.Context, id uuid.UUID) (*ThoughtView, error)
}
