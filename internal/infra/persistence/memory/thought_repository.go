package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"

	"github.com/google/uuid"
)

// thoughtRepository is a mutex-protected slice ordered by insertion.
type thoughtRepository struct {
	mu       sync.RWMutex
	thoughts []*entity.Thought
}

// NewThoughtRepository builds an empty in-memory thought repository.
func NewThoughtRepository() repository.ThoughtRepository {
	return &thoughtRepository{}
}

// Find returns the thoughts matching the query, ordered and paginated.
func (repo *thoughtRepository) Find(ctx context.Context, query repository.ThoughtQuery, sortBy repository.Sort, skip, limit int) ([]*entity.Thought, error) {
	repo.mu.RLock()
	matched := repo.match(query)
	repo.mu.RUnlock()

	sortThoughts(matched, sortBy)

	if skip >= len(matched) {
		return nil, nil
	}
	matched = matched[skip:]
	if limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}

// Count returns the total number of thoughts matching the query.
func (repo *thoughtRepository) Count(ctx context.Context, query repository.ThoughtQuery) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return int64(len(repo.match(query))), nil
}

// FindByID retrieves a single thought by its unique ID.
func (repo *thoughtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Thought, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, thought := range repo.thoughts {
		if thought.ID == id {
			return cloneThought(thought), nil
		}
	}

	return nil, repository.ErrThoughtNotFound
}

// Insert persists a new thought, assigning its id and timestamps.
func (repo *thoughtRepository) Insert(ctx context.Context, thought *entity.Thought) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now().UTC()
	thought.ID = uuid.New()
	thought.CreatedAt = now
	thought.UpdatedAt = now
	repo.thoughts = append(repo.thoughts, cloneThought(thought))

	return nil
}

// UpdateMessage replaces the message of the thought owned by authorID.
func (repo *thoughtRepository) UpdateMessage(ctx context.Context, id, authorID uuid.UUID, message string) (*entity.Thought, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, thought := range repo.thoughts {
		if thought.ID == id && thought.AuthorID == authorID {
			thought.Message = message
			thought.UpdatedAt = time.Now().UTC()

			return cloneThought(thought), nil
		}
	}

	return nil, repository.ErrThoughtNotFound
}

// DeleteOwned removes the thought owned by authorID.
func (repo *thoughtRepository) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) (*entity.Thought, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, thought := range repo.thoughts {
		if thought.ID == id && thought.AuthorID == authorID {
			repo.thoughts = append(repo.thoughts[:i], repo.thoughts[i+1:]...)

			return thought, nil
		}
	}

	return nil, repository.ErrThoughtNotFound
}

// IncrementHearts adds one to the like counter under the write lock, which
// gives the same lost-update-free behavior as the database increment.
func (repo *thoughtRepository) IncrementHearts(ctx context.Context, id uuid.UUID) (*entity.Thought, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, thought := range repo.thoughts {
		if thought.ID == id {
			thought.Hearts++
			thought.UpdatedAt = time.Now().UTC()

			return cloneThought(thought), nil
		}
	}

	return nil, repository.ErrThoughtNotFound
}

// match applies the AND-combined filter predicate. Callers hold the lock.
func (repo *thoughtRepository) match(query repository.ThoughtQuery) []*entity.Thought {
	matched := make([]*entity.Thought, 0, len(repo.thoughts))
	for _, thought := range repo.thoughts {
		if query.Tag != nil && !thought.HasTag(*query.Tag) {
			continue
		}
		if query.MinHearts != nil && thought.Hearts < *query.MinHearts {
			continue
		}
		if query.AuthorID != nil && thought.AuthorID != *query.AuthorID {
			continue
		}
		matched = append(matched, cloneThought(thought))
	}

	return matched
}

// sortThoughts orders a match set by the whitelisted sort key. The sort is
// stable so equal keys keep insertion order, matching the database's
// deterministic secondary ordering closely enough for pagination tests.
func sortThoughts(thoughts []*entity.Thought, sortBy repository.Sort) {
	less := func(a, b *entity.Thought) bool {
		switch sortBy.Key {
		case repository.SortHearts:
			return a.Hearts < b.Hearts
		case repository.SortMessage:
			return a.Message < b.Message
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(thoughts, func(i, j int) bool {
		if sortBy.Descending {
			return less(thoughts[j], thoughts[i])
		}

		return less(thoughts[i], thoughts[j])
	})
}

// cloneThought copies a thought, including its tag slice, so callers cannot
// mutate stored records.
func cloneThought(thought *entity.Thought) *entity.Thought {
	copied := *thought
	copied.Tags = append([]entity.Tag(nil), thought.Tags...)

	return &copied
}
