package components

import (
	"bookingmx/internal/pkg/clock"
	"bookingmx/internal/pkg/config"
	"bookingmx/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewClock,
		usecase.NewReservationService,
	),
)

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Reservation.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
