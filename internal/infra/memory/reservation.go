// Package memory keeps reservations in process memory. It backs local runs and tests.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/infra"
	"bookingmx/internal/pkg/clock"
)

type ReservationRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*reservation.Reservation
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationRepository(clock clock.Clock, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		nextID: 1,
		items:  make(map[int64]*reservation.Reservation),
		clock:  clock,
		logger: logger,
	}
}

func (r *ReservationRepository) FindAll(_ context.Context) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*reservation.Reservation, 0, len(r.items))
	for _, res := range r.items {
		result = append(result, clone(res))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })

	return result, nil
}

func (r *ReservationRepository) FindByID(_ context.Context, id int64) (*reservation.Reservation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[id]
	if !ok {
		return nil, false, nil
	}
	return clone(res), true, nil
}

func (r *ReservationRepository) Save(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	id := res.ID()
	createdAt := now

	if res.IsNew() {
		id = r.nextID
		r.nextID++
	} else {
		stored, ok := r.items[id]
		if !ok {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
		}
		createdAt = stored.CreatedAt()
	}

	saved := reservation.ReconstructReservation(
		id,
		res.GuestName(),
		res.HotelName(),
		res.CheckIn(),
		res.CheckOut(),
		res.Status(),
		createdAt,
		now,
	)
	r.items[id] = saved

	return clone(saved), nil
}

// callers get copies so mutating a returned reservation never touches the store
func clone(res *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		res.ID(),
		res.GuestName(),
		res.HotelName(),
		res.CheckIn(),
		res.CheckOut(),
		res.Status(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
}
