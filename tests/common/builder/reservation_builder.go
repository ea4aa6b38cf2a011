//go:build unit || e2e

package builder

import (
	"time"

	"bookingmx/internal/domain/reservation"
	reqdto "bookingmx/internal/handler/dto/request"
	"bookingmx/internal/usecase"
)

type ReservationBuilder struct {
	ID        int64
	GuestName string
	HotelName string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    reservation.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	today := reservation.DateOf(now)
	return &ReservationBuilder{
		ID:        1,
		GuestName: "Juan",
		HotelName: "Hotel MX",
		CheckIn:   today.AddDate(0, 0, 1),
		CheckOut:  today.AddDate(0, 0, 3),
		Status:    reservation.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.GuestName, b.HotelName, b.CheckIn, b.CheckOut, b.Status, b.CreatedAt, b.UpdatedAt)
}

// BuildNew returns an unsaved reservation, as the service hands it to Save.
func (b *ReservationBuilder) BuildNew() *reservation.Reservation {
	return reservation.NewReservation(b.GuestName, b.HotelName, b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildUsecaseRequest() usecase.ReservationRequest {
	checkIn := b.CheckIn
	checkOut := b.CheckOut
	return usecase.ReservationRequest{
		GuestName: b.GuestName,
		HotelName: b.HotelName,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	checkIn := reservation.FormatDate(b.CheckIn)
	checkOut := reservation.FormatDate(b.CheckOut)
	return reqdto.ReservationRequest{
		GuestName: b.GuestName,
		HotelName: b.HotelName,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
	}
}
