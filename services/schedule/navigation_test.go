package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftDay(t *testing.T) {
	d := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ShiftDay(d, 1))
	assert.Equal(t, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), ShiftDay(d, -1))
	assert.Equal(t, d, ShiftDay(ShiftDay(d, 1), -1))
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

	today, err := ParseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), today)

	d, err := ParseDate("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = ParseDate("2024-13-01", now)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("next")
	require.NoError(t, err)
	assert.Equal(t, 1, d.delta())

	d, err = ParseDirection("previous")
	require.NoError(t, err)
	assert.Equal(t, -1, d.delta())

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Monday, October 19, 2026", DayLabel(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
}
