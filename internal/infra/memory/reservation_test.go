//go:build unit

package memory_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bookingmx/internal/infra"
	"bookingmx/internal/infra/memory"
	"bookingmx/internal/pkg/clock"
	"bookingmx/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func newRepo() (*memory.ReservationRepository, *clock.MockClock) {
	clk := clock.NewMockClock(start)
	return memory.NewReservationRepository(clk, slog.New(slog.NewTextHandler(io.Discard, nil))), clk
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns sequential ids and timestamps", func(t *testing.T) {
		repo, _ := newRepo()

		first, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
		require.NoError(t, err)
		second, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID())
		assert.Equal(t, int64(2), second.ID())
		assert.Equal(t, start, first.CreatedAt())
		assert.Equal(t, start, first.UpdatedAt())
	})

	t.Run("update keeps created at and bumps updated at", func(t *testing.T) {
		repo, clk := newRepo()
		saved, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
		require.NoError(t, err)

		clk.Add(time.Hour)
		require.NoError(t, saved.Amend("Carlos", "Hotel Z", saved.CheckIn(), saved.CheckOut().AddDate(0, 0, 1)))
		updated, err := repo.Save(ctx, saved)
		require.NoError(t, err)

		assert.Equal(t, saved.ID(), updated.ID())
		assert.Equal(t, start, updated.CreatedAt())
		assert.Equal(t, start.Add(time.Hour), updated.UpdatedAt())
		assert.Equal(t, "Carlos", updated.GuestName())
	})

	t.Run("unknown id is NOT_FOUND", func(t *testing.T) {
		repo, _ := newRepo()
		ghost := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 77 }).BuildDomain()

		_, err := repo.Save(ctx, ghost)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("returned values are copies", func(t *testing.T) {
		repo, _ := newRepo()
		saved, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
		require.NoError(t, err)

		require.NoError(t, saved.Cancel())

		found, ok, err := repo.FindByID(ctx, saved.ID())
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, found.IsActive())
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for i := 0; i < 5; i++ {
		_, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
		require.NoError(t, err)
	}

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, res := range all {
		assert.Equal(t, int64(i+1), res.ID())
	}

	_, ok, err := repo.FindByID(ctx, 6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrentSave(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, int64(50), all[49].ID())
}
