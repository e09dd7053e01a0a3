package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"thoughts/internal/delivery/http/middleware"
	"thoughts/internal/delivery/http/response"
	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ThoughtHandlerParams defines the dependencies for the thought handler.
type ThoughtHandlerParams struct {
	fx.In

	ThoughtUsecase usecase.ThoughtUsecase
	Logger         *slog.Logger
}

// ThoughtHandler handles the thought listing and mutation endpoints.
type ThoughtHandler struct {
	thoughtUsecase usecase.ThoughtUsecase
	logger         *slog.Logger
}

// NewThoughtHandler creates a new thought handler.
func NewThoughtHandler(params ThoughtHandlerParams) *ThoughtHandler {
	return &ThoughtHandler{
		thoughtUsecase: params.ThoughtUsecase,
		logger:         params.Logger,
	}
}

// listInput builds the listing input from query parameters. Malformed
// numeric values fall back to the defaults rather than failing the request.
func listInput(c echo.Context) usecase.ListThoughtsInput {
	input := usecase.ListThoughtsInput{
		Page:   usecase.DefaultPage,
		Limit:  usecase.DefaultLimit,
		Tag:    c.QueryParam("tag"),
		SortBy: c.QueryParam("sort_by"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		input.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		input.Limit = limit
	}
	if likes, err := strconv.Atoi(c.QueryParam("likes")); err == nil && likes >= 0 {
		input.MinHearts = &likes
	}

	return input
}

func (h *ThoughtHandler) list(c echo.Context, input usecase.ListThoughtsInput) error {
	output, err := h.thoughtUsecase.List(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List handles GET /thoughts.
func (h *ThoughtHandler) List(c echo.Context) error {
	return h.list(c, listInput(c))
}

// Popular handles GET /thoughts/popular.
func (h *ThoughtHandler) Popular(c echo.Context) error {
	input := listInput(c)
	input.MinHearts = nil
	input.ForceSort = "-hearts"

	return h.list(c, input)
}

// Recent handles GET /thoughts/recent.
func (h *ThoughtHandler) Recent(c echo.Context) error {
	input := listInput(c)
	input.MinHearts = nil
	input.ForceSort = "-createdAt"

	return h.list(c, input)
}

// ByUser handles GET /thoughts/user/:userId.
func (h *ThoughtHandler) ByUser(c echo.Context) error {
	authorID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	input := listInput(c)
	input.MinHearts = nil
	input.AuthorID = &authorID

	return h.list(c, input)
}

// GetByID handles GET /thoughts/:id.
func (h *ThoughtHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	view, err := h.thoughtUsecase.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

type createThoughtRequest struct {
	Message string   `json:"message"`
	Tags    []string `json:"tags"`
}

// Create handles POST /thoughts.
func (h *ThoughtHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req createThoughtRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMessageLength
	}

	view, err := h.thoughtUsecase.Create(c.Request().Context(), &usecase.CreateThoughtInput{
		Message:  req.Message,
		Tags:     req.Tags,
		AuthorID: user.ID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, view, "Thought successfully posted!")
}

type editThoughtRequest struct {
	Message string `json:"message"`
}

// Edit handles PATCH /thoughts/:id.
func (h *ThoughtHandler) Edit(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	var req editThoughtRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMessageLength
	}

	view, err := h.thoughtUsecase.Edit(c.Request().Context(), &usecase.EditThoughtInput{
		ID:       id,
		AuthorID: user.ID,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Thought successfully edited!")
}

// Delete handles DELETE /thoughts/:id.
func (h *ThoughtHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	view, err := h.thoughtUsecase.Delete(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Thought successfully deleted!")
}

// Like handles PATCH /thoughts/:id/like. Liking is public.
func (h *ThoughtHandler) Like(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	view, err := h.thoughtUsecase.Like(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Thought successfully liked!")
}
