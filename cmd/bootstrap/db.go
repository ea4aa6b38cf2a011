package bootstrap

import (
	"context"
	"log/slog"

	"bookingmx/internal/infra/db"
	"bookingmx/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// Connections holds the handle for the configured driver. Both are nil for
// the memory driver.
type Connections struct {
	fx.Out

	Pool  *pgxpool.Pool
	MySQL *sqlx.DB
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Connections, error) {
	var conns Connections

	var cleanup func()
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, closePool, err := db.Connect(cfg.DB)
		if err != nil {
			return Connections{}, err
		}
		conns.Pool, cleanup = pool, closePool
	case config.StorageMySQL:
		xdb, closeDB, err := db.ConnectMySQL(cfg.MySQL)
		if err != nil {
			return Connections{}, err
		}
		conns.MySQL, cleanup = xdb, closeDB
	default:
		logger.Warn("Using in-memory storage, data is lost on restart")
		return conns, nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Storage.AutoMigrate {
				return nil
			}
			logger.Info("Applying database schema", "driver", cfg.Storage.Driver)
			if conns.Pool != nil {
				return db.ApplyPostgresSchema(ctx, conns.Pool)
			}
			return db.ApplyMySQLSchema(ctx, conns.MySQL)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return conns, nil
}
