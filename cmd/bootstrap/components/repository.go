package components

import (
	"log/slog"

	"bookingmx/internal/infra/memory"
	"bookingmx/internal/infra/mysqlrepo"
	"bookingmx/internal/infra/repository"
	"bookingmx/internal/pkg/clock"
	"bookingmx/internal/pkg/config"
	"bookingmx/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewReservationRepository,
	),
)

func NewReservationRepository(
	cfg config.Config,
	pool *pgxpool.Pool,
	xdb *sqlx.DB,
	clock clock.Clock,
	logger *slog.Logger,
) usecase.ReservationRepository {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return repository.NewReservationRepository(pool, logger)
	case config.StorageMySQL:
		return mysqlrepo.NewReservationRepository(xdb, logger)
	default:
		return memory.NewReservationRepository(clock, logger)
	}
}
