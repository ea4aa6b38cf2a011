package usecase

import (
	"strings"
	"time"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/pkg/errs"
)

// validateCreateRequest applies the create rules in order; the first failure wins.
// Equal check-in and check-out dates pass, as does a check-in of today.
func validateCreateRequest(req ReservationRequest, today time.Time) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return errs.BadRequest("Guest name is required")
	}
	if strings.TrimSpace(req.HotelName) == "" {
		return errs.BadRequest("Hotel name is required")
	}
	if req.CheckIn == nil || req.CheckOut == nil {
		return errs.BadRequest("Dates are required")
	}

	checkIn := reservation.DateOf(*req.CheckIn)
	checkOut := reservation.DateOf(*req.CheckOut)

	if checkIn.After(checkOut) {
		return errs.BadRequest("Check-in date must be before check-out date")
	}
	if checkIn.Before(today) {
		return errs.BadRequest("Check-in date cannot be in the past")
	}

	return nil
}

// validateDates is the stricter update rule set: both dates must lie after today
// and the stay must last at least one night.
func validateDates(checkIn, checkOut *time.Time, today time.Time) error {
	if checkIn == nil || checkOut == nil {
		return errs.BadRequest("Dates cannot be null")
	}

	in := reservation.DateOf(*checkIn)
	out := reservation.DateOf(*checkOut)

	if !out.After(in) {
		return errs.BadRequest("Check-out must be after check-in")
	}
	if !in.After(today) {
		return errs.BadRequest("Check-in must be in the future")
	}
	if !out.After(today) {
		return errs.BadRequest("Check-out must be in the future")
	}

	return nil
}
