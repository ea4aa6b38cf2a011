//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/infra/memory"
	"bookingmx/internal/pkg/clock"
	"bookingmx/internal/pkg/errs"
	"bookingmx/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end scenarios against the in-memory store, no mocks.
func newMemoryService() usecase.ReservationService {
	clk := clock.NewMockClock(today.Add(9 * time.Hour))
	repo := memory.NewReservationRepository(clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return usecase.NewReservationService(repo, clk)
}

func request(guest, hotel string, in, out int) usecase.ReservationRequest {
	return usecase.ReservationRequest{
		GuestName: guest,
		HotelName: hotel,
		CheckIn:   ptr(day(in)),
		CheckOut:  ptr(day(out)),
	}
}

func TestScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("create valid reservation", func(t *testing.T) {
		svc := newMemoryService()

		got, err := svc.Create(ctx, request("Juan", "Hotel MX", 1, 3))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusActive, got.Status())
		assert.NotZero(t, got.ID())
	})

	t.Run("create with check-in after check-out", func(t *testing.T) {
		svc := newMemoryService()

		_, err := svc.Create(ctx, request("Ana", "Hotel MX", 5, 2))

		assert.True(t, errs.IsBadRequest(err))
		all, _ := svc.List(ctx)
		assert.Empty(t, all)
	})

	t.Run("update absent id", func(t *testing.T) {
		svc := newMemoryService()

		_, err := svc.Update(ctx, 99, request("Juan", "Hotel MX", 1, 3))

		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("update canceled reservation", func(t *testing.T) {
		svc := newMemoryService()
		created, err := svc.Create(ctx, request("Juan", "Hotel MX", 1, 3))
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, created.ID())
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID(), request("Carlos", "Hotel Z", 4, 6))

		assert.True(t, errs.IsBadRequest(err))
		stored, err := svc.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Juan", stored.GuestName())
	})

	t.Run("cancel twice", func(t *testing.T) {
		svc := newMemoryService()
		created, err := svc.Create(ctx, request("Juan", "Hotel MX", 1, 3))
		require.NoError(t, err)

		first, err := svc.Cancel(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCanceled, first.Status())

		_, err = svc.Cancel(ctx, created.ID())
		assert.True(t, errs.IsBadRequest(err))
	})

	t.Run("update then list reflects the change", func(t *testing.T) {
		svc := newMemoryService()
		created, err := svc.Create(ctx, request("Juan", "Hotel MX", 0, 0))
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID(), request("Carlos", "Hotel Z", 2, 4))
		require.NoError(t, err)
		assert.Equal(t, created.ID(), updated.ID())

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Carlos", all[0].GuestName())
		assert.Equal(t, day(2), all[0].CheckIn())
		assert.True(t, all[0].IsActive())
	})
}
