package repository

import (
	"context"
	"log/slog"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/infra"
	"bookingmx/internal/infra/repository/converter"
	"bookingmx/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const reservationColumns = `id, guest_name, hotel_name, check_in, check_out, status, created_at, updated_at`

const (
	findAllReservationsSQL = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id ASC`

	findReservationByIDSQL = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	insertReservationSQL = `INSERT INTO reservations (guest_name, hotel_name, check_in, check_out, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + reservationColumns

	updateReservationSQL = `UPDATE reservations
SET guest_name = $2, hotel_name = $3, check_in = $4, check_out = $5, status = $6, updated_at = NOW()
WHERE id = $1
RETURNING ` + reservationColumns
)

type ReservationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationRepository(db DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, findAllReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	result := []*reservation.Reservation{}
	for rows.Next() {
		row, err := converter.ScanReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan reservation", err)
		}
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate reservations", err)
	}

	return result, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, bool, error) {
	row, err := converter.ScanReservationRow(r.db.QueryRow(ctx, findReservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
	}

	return res, true, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	if res.IsNew() {
		return r.insert(ctx, res)
	}
	return r.update(ctx, res)
}

func (r *ReservationRepository) insert(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := converter.ScanReservationRow(r.db.QueryRow(ctx, insertReservationSQL, converter.ReservationToArgs(res)...))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "reservation already exists", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create reservation", err)
	}

	return r.toDomain(row)
}

func (r *ReservationRepository) update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	args := append([]any{res.ID()}, converter.ReservationToArgs(res)...)

	row, err := converter.ScanReservationRow(r.db.QueryRow(ctx, updateReservationSQL, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update reservation", err)
	}

	return r.toDomain(row)
}

func (r *ReservationRepository) toDomain(row converter.ReservationRow) (*reservation.Reservation, error) {
	saved, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
	}
	return saved, nil
}
