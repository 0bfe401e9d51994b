// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"
	"folio/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database, migrates the schema and ties the connection
// to the application lifecycle. The handle is constructed here and injected
// downstream; nothing else in the codebase opens connections.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.SQLite.Path), &gorm.Config{
		// Translate driver errors into gorm.ErrDuplicatedKey and friends so
		// the repositories can map them to domain errors.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	// AutoMigrate only adds missing columns and indexes; existing rows are
	// kept as-is and pick up defaults for new columns.
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate SQLite schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// SQLite allows a single writer. One connection serializes writes at the
	// pool level instead of surfacing SQLITE_BUSY to callers.
	sqlDB.SetMaxOpenConns(1)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
