package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/infra/persistence/memory"
	"thoughts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThoughtServiceForTest() usecase.ThoughtUsecase {
	return NewThoughtService(ThoughtServiceParams{
		ThoughtRepo: memory.NewThoughtRepository(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func postThought(t *testing.T, svc usecase.ThoughtUsecase, author uuid.UUID, message string, tags ...string) *usecase.ThoughtView {
	t.Helper()

	view, err := svc.Create(context.Background(), &usecase.CreateThoughtInput{
		Message:  message,
		Tags:     tags,
		AuthorID: author,
	})
	require.NoError(t, err)

	return view
}

func TestThoughtService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	author := uuid.New()

	_, err := svc.Create(ctx, &usecase.CreateThoughtInput{Message: "hiya", AuthorID: author})
	assert.ErrorIs(t, err, domainerrors.ErrMessageLength)

	_, err = svc.Create(ctx, &usecase.CreateThoughtInput{Message: strings.Repeat("x", 141), AuthorID: author})
	assert.ErrorIs(t, err, domainerrors.ErrMessageLength)

	_, err = svc.Create(ctx, &usecase.CreateThoughtInput{
		Message:  "a perfectly fine thought",
		Tags:     []string{"nonsense"},
		AuthorID: author,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTags)

	view := postThought(t, svc, author, "a perfectly fine thought")
	assert.Equal(t, "other", string(view.Tags[0]))
	assert.Equal(t, 0, view.Hearts)
	assert.Equal(t, author, view.Author)
}

func TestThoughtService_ListPagination(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	author := uuid.New()

	for i := 0; i < 15; i++ {
		postThought(t, svc, author, "thought number with padding", "humor")
	}

	output, err := svc.List(ctx, &usecase.ListThoughtsInput{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), output.TotalCount)
	assert.Equal(t, 2, output.CurrentPage)
	assert.Equal(t, 10, output.Limit)
	assert.Len(t, output.Data, 5)
}

func TestThoughtService_ListDefaultsAndFilters(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	author := uuid.New()

	postThought(t, svc, author, "thinking about dinner", "food")
	postThought(t, svc, author, "thinking about lunch", "food")
	postThought(t, svc, author, "thinking about naps", "home")

	output, err := svc.List(ctx, &usecase.ListThoughtsInput{Tag: "food"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), output.TotalCount)
	assert.Equal(t, usecase.DefaultPage, output.CurrentPage)
	assert.Equal(t, usecase.DefaultLimit, output.Limit)

	// Filters combine with AND semantics.
	liked := postThought(t, svc, author, "a thought people enjoy", "food")
	for i := 0; i < 3; i++ {
		_, err := svc.Like(ctx, liked.ID)
		require.NoError(t, err)
	}

	minHearts := 2
	output, err = svc.List(ctx, &usecase.ListThoughtsInput{Tag: "food", MinHearts: &minHearts})
	require.NoError(t, err)
	assert.Equal(t, int64(1), output.TotalCount)
	assert.Equal(t, liked.ID, output.Data[0].ID)
}

func TestThoughtService_ListEmptyResult(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()

	_, err := svc.List(ctx, &usecase.ListThoughtsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoThoughtsFound)

	// A tag outside the enumeration is an empty result, not a 400.
	postThought(t, svc, uuid.New(), "one existing thought")
	_, err = svc.List(ctx, &usecase.ListThoughtsInput{Tag: "not-a-tag"})
	assert.ErrorIs(t, err, domainerrors.ErrNoThoughtsFound)
}

func TestThoughtService_ForceSortOverridesSortBy(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	author := uuid.New()

	quiet := postThought(t, svc, author, "a thought nobody noticed")
	popular := postThought(t, svc, author, "a thought everybody loved")
	for i := 0; i < 5; i++ {
		_, err := svc.Like(ctx, popular.ID)
		require.NoError(t, err)
	}

	output, err := svc.List(ctx, &usecase.ListThoughtsInput{SortBy: "hearts", ForceSort: "-hearts"})
	require.NoError(t, err)
	require.Len(t, output.Data, 2)
	assert.Equal(t, popular.ID, output.Data[0].ID)
	assert.Equal(t, quiet.ID, output.Data[1].ID)
}

func TestThoughtService_EditOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	owner := uuid.New()
	stranger := uuid.New()

	created := postThought(t, svc, owner, "the original wording here")

	_, err := svc.Edit(ctx, &usecase.EditThoughtInput{
		ID:       created.ID,
		AuthorID: stranger,
		Message:  "rewritten by someone else",
	})
	assert.ErrorIs(t, err, domainerrors.ErrThoughtNotFound)

	edited, err := svc.Edit(ctx, &usecase.EditThoughtInput{
		ID:       created.ID,
		AuthorID: owner,
		Message:  "the corrected wording here",
	})
	require.NoError(t, err)
	assert.Equal(t, "the corrected wording here", edited.Message)

	_, err = svc.Edit(ctx, &usecase.EditThoughtInput{ID: created.ID, AuthorID: owner, Message: "oops"})
	assert.ErrorIs(t, err, domainerrors.ErrMessageLength)
}

func TestThoughtService_DeleteOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newThoughtServiceForTest()
	owner := uuid.New()
	stranger := uuid.New()

	created := postThought(t, svc, owner, "a thought about to vanish")

	_, err := svc.Delete(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, domainerrors.ErrThoughtNotFound)

	// The failed delete must not remove the record.
	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	deleted, err := svc.Delete(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrThoughtNotFound)
}

func TestThoughtService_LikeUnknownID(t *testing.T) {
	svc := newThoughtServiceForTest()

	_, err := svc.Like(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrThoughtNotFound)
}
