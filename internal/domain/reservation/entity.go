package reservation

import (
	"errors"
	"time"
)

var (
	ErrReservationCanceled = errors.New("reservation is already canceled")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

// Reservation is one booked stay. ID is zero until the store assigns one.
type Reservation struct {
	id        int64
	guestName string
	hotelName string
	checkIn   time.Time
	checkOut  time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds an unsaved ACTIVE reservation. Input rules are the
// caller's responsibility.
func NewReservation(guestName, hotelName string, checkIn, checkOut time.Time) *Reservation {
	return &Reservation{
		guestName: guestName,
		hotelName: hotelName,
		checkIn:   DateOf(checkIn),
		checkOut:  DateOf(checkOut),
		status:    StatusActive,
	}
}

func ReconstructReservation(
	id int64,
	guestName, hotelName string,
	checkIn, checkOut time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		guestName: guestName,
		hotelName: hotelName,
		checkIn:   DateOf(checkIn),
		checkOut:  DateOf(checkOut),
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Amend overwrites guest, hotel and dates. Status is left untouched.
func (r *Reservation) Amend(guestName, hotelName string, checkIn, checkOut time.Time) error {
	if r.IsCanceled() {
		return ErrReservationCanceled
	}
	r.guestName = guestName
	r.hotelName = hotelName
	r.checkIn = DateOf(checkIn)
	r.checkOut = DateOf(checkOut)
	return nil
}

// Cancel is one-way; there is no operation that reactivates a reservation.
func (r *Reservation) Cancel() error {
	if r.IsCanceled() {
		return ErrReservationCanceled
	}
	r.status = StatusCanceled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) IsNew() bool {
	return r.id == 0
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) GuestName() string    { return r.guestName }
func (r *Reservation) HotelName() string    { return r.hotelName }
func (r *Reservation) CheckIn() time.Time   { return r.checkIn }
func (r *Reservation) CheckOut() time.Time  { return r.checkOut }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
