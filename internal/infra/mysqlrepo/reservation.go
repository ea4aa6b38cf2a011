// Package mysqlrepo stores reservations in MySQL through sqlx.
package mysqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/infra"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const mysqlErrDuplicateEntry = 1062

const (
	selectReservationsSQL = `SELECT id, guest_name, hotel_name, check_in, check_out, status, created_at, updated_at FROM reservations`

	insertReservationSQL = `INSERT INTO reservations (guest_name, hotel_name, check_in, check_out, status)
VALUES (:guest_name, :hotel_name, :check_in, :check_out, :status)`

	updateReservationSQL = `UPDATE reservations
SET guest_name = :guest_name, hotel_name = :hotel_name, check_in = :check_in, check_out = :check_out,
    status = :status, updated_at = CURRENT_TIMESTAMP(6)
WHERE id = :id`
)

type reservationRow struct {
	ID        int64     `db:"id"`
	GuestName string    `db:"guest_name"`
	HotelName string    `db:"hotel_name"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func rowFromDomain(res *reservation.Reservation) reservationRow {
	return reservationRow{
		ID:        res.ID(),
		GuestName: res.GuestName(),
		HotelName: res.HotelName(),
		CheckIn:   res.CheckIn(),
		CheckOut:  res.CheckOut(),
		Status:    res.Status().String(),
	}
}

func (r reservationRow) toDomain() (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		r.ID,
		r.GuestName,
		r.HotelName,
		reservation.DateOf(r.CheckIn),
		reservation.DateOf(r.CheckOut),
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

type ReservationRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewReservationRepository(db *sqlx.DB, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows, selectReservationsSQL+" ORDER BY id ASC"); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := row.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
		}
		result = append(result, res)
	}

	return result, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, bool, error) {
	var row reservationRow
	if err := r.db.GetContext(ctx, &row, selectReservationsSQL+" WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation", err)
	}

	res, err := row.toDomain()
	if err != nil {
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
	}

	return res, true, nil
}

// Save has no RETURNING in MySQL, so the stored row is read back after the write.
func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	id := res.ID()

	if res.IsNew() {
		result, err := r.db.NamedExecContext(ctx, insertReservationSQL, rowFromDomain(res))
		if err != nil {
			if isDuplicateEntry(err) {
				return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "reservation already exists", err)
			}
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create reservation", err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read inserted id", err)
		}
	} else {
		result, err := r.db.NamedExecContext(ctx, updateReservationSQL, rowFromDomain(res))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update reservation", err)
		}
		// updated_at changes on every write, so zero affected rows means the id is unknown
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read affected rows", err)
		}
		if affected == 0 {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
		}
	}

	saved, found, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}

	return saved, nil
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry
}
