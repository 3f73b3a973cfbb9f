package schedule

import (
	"fmt"
	"time"

	"workhub/utils"
)

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ParseDirection accepts "next"/"prev" (and "previous").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "next":
		return DirectionNext, nil
	case "prev", "previous":
		return DirectionPrev, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) delta() int {
	if d == DirectionPrev {
		return -1
	}
	return 1
}

// ShiftDay moves date by delta calendar days. It has no effect on the catalog.
func ShiftDay(date time.Time, delta int) time.Time {
	return date.AddDate(0, 0, delta)
}

// ParseDate parses "YYYY-MM-DD"; an empty string means today in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(utils.DateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DayLabel renders the calendar header, e.g. "Monday, October 19, 2026".
func DayLabel(date time.Time) string {
	return date.Format("Monday, January 2, 2006")
}
