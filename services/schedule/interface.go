package schedule

import (
	"context"
	"time"

	"workhub/models"
)

// ScheduleService answers the booking calendar.
type ScheduleService interface {
	Slots() []string
	Day(ctx context.Context, date time.Time) (*models.DaySchedule, error)
	Navigate(ctx context.Context, date time.Time, dir Direction) (*models.DaySchedule, error)
	Slot(ctx context.Context, date time.Time, slot string) (models.SlotView, error)
	BookNow(ctx context.Context, date time.Time, slot string) (models.SlotView, error)
	Stats(ctx context.Context, date time.Time) (*models.BookingStats, error)
	Upcoming(ctx context.Context) ([]models.Booking, error)
}

var _ ScheduleService = (*DefaultScheduleService)(nil)
