package main

import (
	"context"
	"log/slog"
	"os"

	"thoughts/config"
	"thoughts/internal/delivery"
	"thoughts/internal/delivery/http"
	"thoughts/internal/delivery/http/middleware"
	"thoughts/internal/delivery/http/router/handler"
	"thoughts/internal/domain/repository"
	"thoughts/internal/domain/service"
	"thoughts/internal/infra/auth"
	"thoughts/internal/infra/cache"
	logs "thoughts/internal/infra/log"
	"thoughts/internal/infra/persistence/postgres"
	"thoughts/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewThoughtRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewAccessTokenGenerator,
			newTokenCache,
			newCredentialVerifier,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher using the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newTokenCache creates the token lookup cache. The cache is optional; a nil
// cache disables caching and every token resolves against the store.
func newTokenCache(lc fx.Lifecycle, cfg *config.Config) *cache.TokenCache {
	if cfg.Redis == nil {
		return nil
	}

	tokenCache := cache.NewTokenCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TokenTTL)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tokenCache.Close()
		},
	})

	return tokenCache
}

// newCredentialVerifier selects the verifier from config. The opaque scheme
// resolves raw bearer tokens against the store; jwt validates signed tokens.
func newCredentialVerifier(
	cfg *config.Config,
	userRepo repository.UserRepository,
	tokenCache *cache.TokenCache,
	logger *slog.Logger,
) (service.CredentialVerifier, error) {
	if cfg.Auth != nil && cfg.Auth.Scheme == "jwt" {
		return auth.NewJWTVerifier(cfg.Auth.JWTSecret, userRepo)
	}

	return auth.NewOpaqueVerifier(userRepo, tokenCache, logger), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewThoughtService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewThoughtHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
