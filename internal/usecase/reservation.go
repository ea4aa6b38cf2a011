package usecase

import (
	"context"
	"time"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/pkg/clock"
	"bookingmx/internal/pkg/errs"
)

const (
	msgReservationNotFound  = "Reservation not found"
	msgCannotUpdateCanceled = "Cannot update a canceled reservation"
	msgAlreadyCanceled      = "Reservation is already canceled"
)

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation.go -package=usecasemock

type ReservationRepository interface {
	// FindAll returns every stored reservation ordered by ascending ID.
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	// FindByID reports false without error when no reservation has the given ID.
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, bool, error)
	// Save inserts when res has no ID yet and overwrites the stored state otherwise.
	Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
}

// ReservationRequest carries the caller supplied fields for create and update.
// A nil date means the caller did not send it.
type ReservationRequest struct {
	GuestName string
	HotelName string
	CheckIn   *time.Time
	CheckOut  *time.Time
}

type ReservationService interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	Create(ctx context.Context, req ReservationRequest) (*reservation.Reservation, error)
	Update(ctx context.Context, id int64, req ReservationRequest) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type reservationServiceImpl struct {
	repo  ReservationRepository
	clock clock.Clock
}

func NewReservationService(repo ReservationRepository, clock clock.Clock) ReservationService {
	return &reservationServiceImpl{
		repo:  repo,
		clock: clock,
	}
}

func (s *reservationServiceImpl) List(ctx context.Context) ([]*reservation.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*reservation.Reservation{}
	}

	return reservations, nil
}

func (s *reservationServiceImpl) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return s.findExisting(ctx, id)
}

func (s *reservationServiceImpl) Create(ctx context.Context, req ReservationRequest) (*reservation.Reservation, error) {
	if err := validateCreateRequest(req, s.today()); err != nil {
		return nil, err
	}

	res := reservation.NewReservation(req.GuestName, req.HotelName, *req.CheckIn, *req.CheckOut)

	return s.repo.Save(ctx, res)
}

func (s *reservationServiceImpl) Update(ctx context.Context, id int64, req ReservationRequest) (*reservation.Reservation, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.IsActive() {
		return nil, errs.BadRequest(msgCannotUpdateCanceled)
	}

	if err := validateDates(req.CheckIn, req.CheckOut, s.today()); err != nil {
		return nil, err
	}

	if err := existing.Amend(req.GuestName, req.HotelName, *req.CheckIn, *req.CheckOut); err != nil {
		return nil, errs.Mark(err, errs.ErrBadRequest)
	}

	return s.repo.Save(ctx, existing)
}

func (s *reservationServiceImpl) Cancel(ctx context.Context, id int64) (*reservation.Reservation, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Cancel(); err != nil {
		return nil, errs.BadRequest(msgAlreadyCanceled)
	}

	return s.repo.Save(ctx, existing)
}

func (s *reservationServiceImpl) findExisting(ctx context.Context, id int64) (*reservation.Reservation, error) {
	existing, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound(msgReservationNotFound)
	}

	return existing, nil
}

func (s *reservationServiceImpl) today() time.Time {
	return reservation.DateOf(s.clock.Now())
}
