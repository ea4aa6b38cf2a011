//go:build unit

package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"bookingmx/internal/domain/reservation"
	"bookingmx/internal/infra"
	"bookingmx/internal/pkg/pgconv"
	"bookingmx/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql, args)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

// fakeRow copies values into the scan destinations, or fails with err.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func rowValues(id int64, res *reservation.Reservation, status string) []any {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	return []any{
		id,
		res.GuestName(),
		res.HotelName(),
		pgconv.DateToPgtype(res.CheckIn()),
		pgconv.DateToPgtype(res.CheckOut()),
		status,
		pgconv.TimeToPgtype(now),
		pgconv.TimeToPgtype(now),
	}
}

func newTestRepo() (*ReservationRepository, *MockDBTX) {
	db := new(MockDBTX)
	return NewReservationRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil))), db
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("insert returns the stored row with its id", func(t *testing.T) {
		repo, db := newTestRepo()
		res := builder.NewReservationBuilder().BuildNew()
		db.On("QueryRow", ctx, insertReservationSQL, mock.Anything).
			Return(fakeRow{values: rowValues(41, res, "ACTIVE")}).Once()

		got, err := repo.Save(ctx, res)

		require.NoError(t, err)
		assert.Equal(t, int64(41), got.ID())
		assert.Equal(t, res.CheckIn(), got.CheckIn())
		assert.Equal(t, reservation.StatusActive, got.Status())
		db.AssertExpectations(t)
	})

	t.Run("update passes the id first", func(t *testing.T) {
		repo, db := newTestRepo()
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 9 }).BuildDomain()
		db.On("QueryRow", ctx, updateReservationSQL, mock.MatchedBy(func(args []any) bool {
			return len(args) == 6 && args[0] == int64(9)
		})).Return(fakeRow{values: rowValues(9, res, "ACTIVE")}).Once()

		got, err := repo.Save(ctx, res)

		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID())
		db.AssertExpectations(t)
	})

	t.Run("update of a missing row is NOT_FOUND", func(t *testing.T) {
		repo, db := newTestRepo()
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 404 }).BuildDomain()
		db.On("QueryRow", ctx, updateReservationSQL, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows}).Once()

		_, err := repo.Save(ctx, res)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unique violation on insert is DUPLICATE_KEY", func(t *testing.T) {
		repo, db := newTestRepo()
		db.On("QueryRow", ctx, insertReservationSQL, mock.Anything).
			Return(fakeRow{err: &pgconn.PgError{Code: "23505"}}).Once()

		_, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("driver failure is DB_FAILURE", func(t *testing.T) {
		repo, db := newTestRepo()
		db.On("QueryRow", ctx, insertReservationSQL, mock.Anything).
			Return(fakeRow{err: errors.New("connection reset")}).Once()

		_, err := repo.Save(ctx, builder.NewReservationBuilder().BuildNew())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("absent row is not an error", func(t *testing.T) {
		repo, db := newTestRepo()
		db.On("QueryRow", ctx, findReservationByIDSQL, []any{int64(3)}).Return(fakeRow{err: pgx.ErrNoRows}).Once()

		got, found, err := repo.FindByID(ctx, 3)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("corrupt status is DB_FAILURE", func(t *testing.T) {
		repo, db := newTestRepo()
		res := builder.NewReservationBuilder().BuildDomain()
		db.On("QueryRow", ctx, findReservationByIDSQL, []any{int64(1)}).
			Return(fakeRow{values: rowValues(1, res, "UNKNOWN")}).Once()

		_, found, err := repo.FindByID(ctx, 1)

		assert.False(t, found)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("found", func(t *testing.T) {
		repo, db := newTestRepo()
		res := builder.NewReservationBuilder().BuildDomain()
		db.On("QueryRow", ctx, findReservationByIDSQL, []any{int64(1)}).
			Return(fakeRow{values: rowValues(1, res, "CANCELED")}).Once()

		got, found, err := repo.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, got.IsCanceled())
	})
}

func TestFindAllQueryFailure(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo()
	db.On("Query", ctx, findAllReservationsSQL, mock.Anything).Return(nil, errors.New("relation does not exist")).Once()

	_, err := repo.FindAll(ctx)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
