package response

import (
	"time"

	"bookingmx/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID        int64     `json:"id" example:"1"`
	GuestName string    `json:"guestName" example:"Juan"`
	HotelName string    `json:"hotelName" example:"Hotel MX"`
	CheckIn   string    `json:"checkIn" example:"2030-06-16"`
	CheckOut  string    `json:"checkOut" example:"2030-06-18"`
	Status    string    `json:"status" example:"ACTIVE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// calendar dates are the only time.Time getters that land in string fields
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return reservation.FormatDate(src.(time.Time)), nil
			},
		},
	},
}

// FromReservation copies the getters of res into the response.
func FromReservation(res *reservation.Reservation) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.CopyWithOption(&out, res, copyOption); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromReservations(items []*reservation.Reservation) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(items))
	for _, item := range items {
		resp, err := FromReservation(item)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
