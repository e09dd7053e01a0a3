// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"thoughts/config"
	"thoughts/internal/domain/lifecycle"
	"thoughts/internal/errors"
	"thoughts/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection, runs auto-migrations and registers
// lifecycle hooks for ping-on-start and close-on-stop.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(params.Config.Database.URL), &gorm.Config{
		// TranslateError maps driver errors onto gorm.ErrDuplicatedKey and
		// friends, which the repositories rely on for constraint handling.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PostgreSQL connection")
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.ThoughtModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to auto migrate")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL connection")
		},
	})

	return db, nil
}
