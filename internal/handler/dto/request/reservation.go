package request

import (
	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/pkg/errs"
	"bookingmx/internal/usecase"
)

// ReservationRequest is the body of create and update. Absent or null dates
// reach the service as nil so its own rules decide the response message.
type ReservationRequest struct {
	GuestName string  `json:"guestName" example:"Juan"`
	HotelName string  `json:"hotelName" example:"Hotel MX"`
	CheckIn   *string `json:"checkIn" binding:"omitempty,datetime=2006-01-02" example:"2030-06-16"`
	CheckOut  *string `json:"checkOut" binding:"omitempty,datetime=2006-01-02" example:"2030-06-18"`
}

func (r ReservationRequest) ToUsecase() (usecase.ReservationRequest, error) {
	out := usecase.ReservationRequest{
		GuestName: r.GuestName,
		HotelName: r.HotelName,
	}

	if r.CheckIn != nil {
		d, err := reservation.ParseDate(*r.CheckIn)
		if err != nil {
			return usecase.ReservationRequest{}, errs.Mark(errs.Wrap(err, "invalid checkIn"), errs.ErrBadRequest)
		}
		out.CheckIn = &d
	}
	if r.CheckOut != nil {
		d, err := reservation.ParseDate(*r.CheckOut)
		if err != nil {
			return usecase.ReservationRequest{}, errs.Mark(errs.Wrap(err, "invalid checkOut"), errs.ErrBadRequest)
		}
		out.CheckOut = &d
	}

	return out, nil
}
