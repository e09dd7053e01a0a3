package handler

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"thoughts/internal/delivery/http/response"
	domainerrors "thoughts/internal/domain/errors"
	"thoughts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams defines the dependencies for the user handler.
type UserHandlerParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
	Logger      *slog.Logger
}

// UserHandler handles registration, login and the service level endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUsecase: params.UserUsecase,
		logger:      params.Logger,
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials
	}
	if strings.TrimSpace(input.UserName) == "" {
		return domainerrors.ErrMissingCredentials
	}

	output, err := h.userUsecase.Register(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "User created successfully!")
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials
	}
	if strings.TrimSpace(input.UserName) == "" {
		return domainerrors.ErrMissingCredentials
	}

	output, err := h.userUsecase.Login(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "Log in successful!")
}

// HealthCheck handles GET /health.
func (h *UserHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, echo.Map{"status": "ok"}, "")
}

type endpointEntry struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// EndpointIndex returns a handler for GET / listing the registered routes.
func (h *UserHandler) EndpointIndex(e *echo.Echo) echo.HandlerFunc {
	return func(c echo.Context) error {
		byPath := make(map[string][]string)
		for _, route := range e.Routes() {
			if strings.HasPrefix(route.Name, "github.com/labstack/echo") {
				continue
			}
			byPath[route.Path] = append(byPath[route.Path], route.Method)
		}

		endpoints := make([]endpointEntry, 0, len(byPath))
		for path, methods := range byPath {
			sort.Strings(methods)
			endpoints = append(endpoints, endpointEntry{Path: path, Methods: methods})
		}
		sort.Slice(endpoints, func(i, j int) bool {
			return endpoints[i].Path < endpoints[j].Path
		})

		payload := echo.Map{
			"message":   "Welcome to the Happy Thoughts API",
			"endpoints": endpoints,
		}

		return response.Success(c, http.StatusOK, payload, "")
	}
}
