package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"thoughts/internal/domain/entity"
	"thoughts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedThoughts(t *testing.T, repo repository.ThoughtRepository, n int, authorID uuid.UUID, tags []entity.Tag) []*entity.Thought {
	t.Helper()
	ctx := context.Background()

	seeded := make([]*entity.Thought, 0, n)
	for i := 0; i < n; i++ {
		thought := &entity.Thought{
			Message:  fmt.Sprintf("seeded thought number %02d", i),
			Tags:     tags,
			AuthorID: authorID,
		}
		require.NoError(t, repo.Insert(ctx, thought))
		seeded = append(seeded, thought)
	}

	return seeded
}

func TestThoughtRepository_FindByID(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()
	author := uuid.New()

	seeded := seedThoughts(t, repo, 1, author, []entity.Tag{entity.TagTravel})

	found, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].Message, found.Message)
	assert.Equal(t, []entity.Tag{entity.TagTravel}, found.Tags)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrThoughtNotFound)
}

func TestThoughtRepository_TagFilter(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()
	author := uuid.New()

	seedThoughts(t, repo, 3, author, []entity.Tag{entity.TagTravel})
	seedThoughts(t, repo, 2, author, []entity.Tag{entity.TagFood})

	tag := entity.TagTravel
	query := repository.ThoughtQuery{Tag: &tag}

	count, err := repo.Count(ctx, query)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	found, err := repo.Find(ctx, query, repository.DefaultSort, 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 3)
	for _, thought := range found {
		assert.True(t, thought.HasTag(entity.TagTravel))
	}
}

func TestThoughtRepository_MinHeartsFilter(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()
	author := uuid.New()

	seeded := seedThoughts(t, repo, 3, author, nil)
	for i := 0; i < 2; i++ {
		_, err := repo.IncrementHearts(ctx, seeded[0].ID)
		require.NoError(t, err)
	}

	min := 2
	found, err := repo.Find(ctx, repository.ThoughtQuery{MinHearts: &min}, repository.DefaultSort, 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, seeded[0].ID, found[0].ID)
	assert.Equal(t, 2, found[0].Hearts)
}

func TestThoughtRepository_Pagination(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()

	seedThoughts(t, repo, 15, uuid.New(), nil)

	query := repository.ThoughtQuery{}
	count, err := repo.Count(ctx, query)
	require.NoError(t, err)
	assert.EqualValues(t, 15, count)

	// page=2, limit=10 on 15 rows yields rows 11-15
	pageTwo, err := repo.Find(ctx, query, repository.Sort{Key: repository.SortCreatedAt}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, pageTwo, 5)

	// a page past the end is empty, not an error
	pageThree, err := repo.Find(ctx, query, repository.DefaultSort, 20, 10)
	require.NoError(t, err)
	assert.Empty(t, pageThree)
}

func TestThoughtRepository_SortByHeartsDescending(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()

	seeded := seedThoughts(t, repo, 3, uuid.New(), nil)
	for i := 0; i < 5; i++ {
		_, err := repo.IncrementHearts(ctx, seeded[1].ID)
		require.NoError(t, err)
	}
	_, err := repo.IncrementHearts(ctx, seeded[2].ID)
	require.NoError(t, err)

	found, err := repo.Find(ctx, repository.ThoughtQuery{}, repository.Sort{Key: repository.SortHearts, Descending: true}, 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, seeded[1].ID, found[0].ID)
	assert.Equal(t, seeded[2].ID, found[1].ID)
	assert.Equal(t, seeded[0].ID, found[2].ID)
}

func TestThoughtRepository_ConcurrentLikesLoseNoUpdates(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()

	seeded := seedThoughts(t, repo, 1, uuid.New(), nil)

	const likers = 50
	var wg sync.WaitGroup
	wg.Add(likers)
	for i := 0; i < likers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.IncrementHearts(ctx, seeded[0].ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, likers, found.Hearts)
}

func TestThoughtRepository_OwnershipScoping(t *testing.T) {
	repo := NewThoughtRepository()
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	seeded := seedThoughts(t, repo, 1, owner, nil)

	// a non-owner cannot edit or delete, and cannot tell the thought exists
	_, err := repo.UpdateMessage(ctx, seeded[0].ID, stranger, "hijacked message here")
	assert.ErrorIs(t, err, repository.ErrThoughtNotFound)

	_, err = repo.DeleteOwned(ctx, seeded[0].ID, stranger)
	assert.ErrorIs(t, err, repository.ErrThoughtNotFound)

	// the thought is still there
	_, err = repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)

	// the owner can do both
	updated, err := repo.UpdateMessage(ctx, seeded[0].ID, owner, "edited by the owner")
	require.NoError(t, err)
	assert.Equal(t, "edited by the owner", updated.Message)

	deleted, err := repo.DeleteOwned(ctx, seeded[0].ID, owner)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].ID, deleted.ID)

	_, err = repo.FindByID(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrThoughtNotFound)
}
