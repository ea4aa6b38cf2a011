//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"bookingmx/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadRequest(t *testing.T) {
	err := errs.BadRequest("Guest name is required")

	require.Error(t, err)
	assert.Equal(t, "Guest name is required", err.Error())
	assert.True(t, errs.Is(err, errs.ErrBadRequest))
	assert.False(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.IsBadRequest(err))
	assert.False(t, errs.IsNotFound(err))
}

func TestNotFound(t *testing.T) {
	err := errs.NotFound("Reservation not found")

	require.Error(t, err)
	assert.Equal(t, "Reservation not found", err.Error())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.False(t, errs.IsBadRequest(err))
}

func TestMarkersSurviveWrapping(t *testing.T) {
	err := errs.Wrap(errs.NotFound("Reservation not found"), "update reservation")

	assert.True(t, errs.IsNotFound(err))
	assert.Contains(t, err.Error(), "Reservation not found")
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("message is prefixed", func(t *testing.T) {
		base := errors.New("connection refused")
		err := errs.Wrap(base, "failed to save reservation")
		assert.Equal(t, "failed to save reservation: connection refused", err.Error())
		assert.True(t, errors.Is(err, base))
	})
}

func TestMark(t *testing.T) {
	marker := errors.New("marker")

	assert.Equal(t, marker, errs.Mark(nil, marker))
	assert.True(t, errs.Is(errs.Mark(errors.New("boom"), marker), marker))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
}
