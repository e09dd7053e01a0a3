package impl

import (
	"context"
	"log/slog"

	"thoughts/internal/domain/entity"
	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/domain/repository"
	"thoughts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// thoughtService implements the ThoughtUsecase interface.
type thoughtService struct {
	thoughtRepo repository.ThoughtRepository
	logger      *slog.Logger
}

// ThoughtServiceParams holds dependencies for thoughtService, injected by Fx.
type ThoughtServiceParams struct {
	fx.In

	ThoughtRepo repository.ThoughtRepository
	Logger      *slog.Logger
}

// NewThoughtService is the constructor for thoughtService.
func NewThoughtService(params ThoughtServiceParams) usecase.ThoughtUsecase {
	return &thoughtService{
		thoughtRepo: params.ThoughtRepo,
		logger:      params.Logger,
	}
}

// List builds the query predicate from the provided filters, counts the
// full match set, then fetches one page. An empty page is reported as
// ErrNoThoughtsFound; the delivery layer turns that into a 404 envelope.
func (srv *thoughtService) List(ctx context.Context, input *usecase.ListThoughtsInput) (*usecase.ListThoughtsOutput, error) {
	page := input.Page
	if page < 1 {
		page = usecase.DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = usecase.DefaultLimit
	}

	var query repository.ThoughtQuery
	if input.Tag != "" {
		tag, ok := entity.ParseTag(input.Tag)
		if !ok {
			// A tag outside the enumeration can never match a stored
			// thought, so the result set is empty by definition.
			return nil, domainerrors.ErrNoThoughtsFound.WrapMessage("unknown tag filter")
		}
		query.Tag = &tag
	}
	query.MinHearts = input.MinHearts
	query.AuthorID = input.AuthorID

	sort := repository.ParseSort(input.SortBy)
	if input.ForceSort != "" {
		sort = repository.ParseSort(input.ForceSort)
	}

	totalCount, err := srv.thoughtRepo.Count(ctx, query)
	if err != nil {
		srv.logger.Error("Failed to count thoughts", slog.Any("error", err))

		return nil, domainerrors.ErrFetchThoughts.WrapMessage("count query failed")
	}

	thoughts, err := srv.thoughtRepo.Find(ctx, query, sort, (page-1)*limit, limit)
	if err != nil {
		srv.logger.Error("Failed to list thoughts", slog.Any("error", err))

		return nil, domainerrors.ErrFetchThoughts.WrapMessage("find query failed")
	}

	if len(thoughts) == 0 {
		return nil, domainerrors.ErrNoThoughtsFound.WrapMessage("empty result page")
	}

	data := make([]*usecase.ThoughtView, 0, len(thoughts))
	for _, thought := range thoughts {
		data = append(data, usecase.NewThoughtView(thought))
	}

	return &usecase.ListThoughtsOutput{
		Data:        data,
		TotalCount:  totalCount,
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

// GetByID fetches a single thought.
func (srv *thoughtService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.ThoughtView, error) {
	thought, err := srv.thoughtRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrThoughtNotFound) {
			return nil, domainerrors.ErrThoughtNotFound.WrapMessage("no thought with that id")
		}
		srv.logger.Error("Failed to fetch thought", slog.Any("thoughtID", id), slog.Any("error", err))

		return nil, domainerrors.ErrFetchThoughts.WrapMessage("find by id failed")
	}

	return usecase.NewThoughtView(thought), nil
}

// Create validates the message and tag set, then persists a new thought
// owned by the authenticated user.
func (srv *thoughtService) Create(ctx context.Context, input *usecase.CreateThoughtInput) (*usecase.ThoughtView, error) {
	if !entity.ValidMessage(input.Message) {
		return nil, domainerrors.ErrMessageLength.WrapMessage("message length out of range")
	}

	tags, ok := entity.NormalizeTags(input.Tags)
	if !ok {
		return nil, domainerrors.ErrInvalidTags.WrapMessage("tag outside the enumeration")
	}

	thought := &entity.Thought{
		Message:  input.Message,
		Tags:     tags,
		AuthorID: input.AuthorID,
	}

	if err := srv.thoughtRepo.Insert(ctx, thought); err != nil {
		srv.logger.Error("Failed to create thought", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, domainerrors.ErrCreateThought.WrapMessage("insert failed")
	}

	srv.logger.Info("Thought posted", slog.Any("thoughtID", thought.ID), slog.Any("authorID", thought.AuthorID))

	return usecase.NewThoughtView(thought), nil
}

// Edit replaces the message of a thought owned by the caller. A missing id
// and a non-owned thought are equally reported as not found.
func (srv *thoughtService) Edit(ctx context.Context, input *usecase.EditThoughtInput) (*usecase.ThoughtView, error) {
	if !entity.ValidMessage(input.Message) {
		return nil, domainerrors.ErrMessageLength.WrapMessage("message length out of range")
	}

	thought, err := srv.thoughtRepo.UpdateMessage(ctx, input.ID, input.AuthorID, input.Message)
	if err != nil {
		if errors.Is(err, repository.ErrThoughtNotFound) {
			return nil, domainerrors.ErrThoughtNotFound.WrapMessage("no owned thought with that id")
		}
		srv.logger.Error("Failed to edit thought", slog.Any("thoughtID", input.ID), slog.Any("error", err))

		return nil, domainerrors.ErrEditThought.WrapMessage("update failed")
	}

	return usecase.NewThoughtView(thought), nil
}

// Delete removes a thought owned by the caller and returns the deleted record.
func (srv *thoughtService) Delete(ctx context.Context, id, authorID uuid.UUID) (*usecase.ThoughtView, error) {
	thought, err := srv.thoughtRepo.DeleteOwned(ctx, id, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrThoughtNotFound) {
			return nil, domainerrors.ErrThoughtNotFound.WrapMessage("no owned thought with that id")
		}
		srv.logger.Error("Failed to delete thought", slog.Any("thoughtID", id), slog.Any("error", err))

		return nil, domainerrors.ErrDeleteThought.WrapMessage("delete failed")
	}

	srv.logger.Info("Thought deleted", slog.Any("thoughtID", id), slog.Any("authorID", authorID))

	return usecase.NewThoughtView(thought), nil
}

// Like increments the hearts counter by one. The increment happens in a
// single atomic store operation so concurrent likes never lose updates.
func (srv *thoughtService) Like(ctx context.Context, id uuid.UUID) (*usecase.ThoughtView, error) {
	thought, err := srv.thoughtRepo.IncrementHearts(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrThoughtNotFound) {
			return nil, domainerrors.ErrThoughtNotFound.WrapMessage("no thought with that id")
		}
		srv.logger.Error("Failed to like thought", slog.Any("thoughtID", id), slog.Any("error", err))

		return nil, domainerrors.ErrLikeThought.WrapMessage("increment failed")
	}

	return usecase.NewThoughtView(thought), nil
}
