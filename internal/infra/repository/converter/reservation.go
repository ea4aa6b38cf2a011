package converter

import (
	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/pkg/errs"
	"bookingmx/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRow mirrors one row of the reservations table.
type ReservationRow struct {
	ID        int64
	GuestName string
	HotelName string
	CheckIn   pgtype.Date
	CheckOut  pgtype.Date
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func ScanReservationRow(row pgx.Row) (ReservationRow, error) {
	var r ReservationRow
	err := row.Scan(
		&r.ID,
		&r.GuestName,
		&r.HotelName,
		&r.CheckIn,
		&r.CheckOut,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func ReservationFromRow(row ReservationRow) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt reservation row")
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.GuestName,
		row.HotelName,
		pgconv.DateFromPgtype(row.CheckIn),
		pgconv.DateFromPgtype(row.CheckOut),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// ReservationToArgs returns guest_name, hotel_name, check_in, check_out, status in that order.
func ReservationToArgs(res *reservation.Reservation) []any {
	return []any{
		res.GuestName(),
		res.HotelName(),
		pgconv.DateToPgtype(res.CheckIn()),
		pgconv.DateToPgtype(res.CheckOut()),
		res.Status().String(),
	}
}
