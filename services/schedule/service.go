package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"workhub/config"
	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
	"workhub/services/notification"
	"workhub/utils"

	"go.uber.org/zap"
)

const (
	DefaultOpeningHour = 8
	DefaultSlotCount   = 12
)

// DefaultScheduleService serves the booking calendar from the catalog.
type DefaultScheduleService struct {
	Catalog     catalogRepo.Catalog
	Notifier    notification.Notifier
	Cache       DayCache // optional
	CacheTTL    time.Duration
	OpeningHour int
	SlotCount   int
	Logger      *zap.Logger
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// Slots returns the hourly grid labels. A grid that would run past midnight
// falls back to the default one.
func (s *DefaultScheduleService) Slots() []string {
	opening, count := s.OpeningHour, s.SlotCount
	if !config.ValidGrid(opening, count) {
		opening, count = DefaultOpeningHour, DefaultSlotCount
	}
	return TimeSlots(opening, count)
}

// Day resolves the calendar grid for date.
func (s *DefaultScheduleService) Day(ctx context.Context, date time.Time) (*models.DaySchedule, error) {
	dateStr := date.Format(utils.DateLayout)
	key := utils.DayCachePrefix + dateStr
	logger := s.logger()

	if s.Cache != nil {
		data, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("day cache read failed", zap.String("date", dateStr), zap.Error(err))
		} else if ok {
			var day models.DaySchedule
			if err := json.Unmarshal(data, &day); err == nil {
				return &day, nil
			}
			logger.Warn("discarding undecodable cached day", zap.String("date", dateStr))
		}
	}

	bookings, err := s.Catalog.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	day := &models.DaySchedule{
		Date:  dateStr,
		Label: DayLabel(date),
		Slots: ResolveDay(s.Slots(), bookingsOn(bookings, dateStr)),
	}

	if s.Cache != nil {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = utils.DefaultCacheTTL
		}
		if data, err := json.Marshal(day); err == nil {
			if err := s.Cache.Set(ctx, key, data, ttl); err != nil {
				logger.Warn("day cache write failed", zap.String("date", dateStr), zap.Error(err))
			}
		}
	}
	return day, nil
}

// Navigate moves one day in dir from date and returns that day's grid.
func (s *DefaultScheduleService) Navigate(ctx context.Context, date time.Time, dir Direction) (*models.DaySchedule, error) {
	target := ShiftDay(date, dir.delta())

	day, err := s.Day(ctx, target)
	if err != nil {
		return nil, err
	}

	notification.Send(ctx, s.Notifier, notification.Message{
		Title:       "Date Changed",
		Description: "Viewing bookings for " + day.Label,
	}, s.logger())
	return day, nil
}

// Slot resolves a single slot label for date. Any valid clock time is accepted,
// including times off the hourly grid.
func (s *DefaultScheduleService) Slot(ctx context.Context, date time.Time, slot string) (models.SlotView, error) {
	normalized, err := utils.NormalizeClock(slot)
	if err != nil {
		return models.SlotView{}, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	bookings, err := s.Catalog.Bookings(ctx)
	if err != nil {
		return models.SlotView{}, fmt.Errorf("failed to load bookings: %w", err)
	}
	views := ResolveDay([]string{normalized}, bookingsOn(bookings, date.Format(utils.DateLayout)))
	return views[0], nil
}

// BookNow starts a booking on a free grid slot. Nothing is reserved: the operator is
// notified to continue with the booking form.
func (s *DefaultScheduleService) BookNow(ctx context.Context, date time.Time, slot string) (models.SlotView, error) {
	normalized, err := utils.NormalizeClock(slot)
	if err != nil || !slices.Contains(s.Slots(), normalized) {
		return models.SlotView{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	view, err := s.Slot(ctx, date, normalized)
	if err != nil {
		return models.SlotView{}, err
	}
	if !view.Available {
		return view, fmt.Errorf("%w: %s is held by %q", ErrSlotOccupied, normalized, view.Booking.Title)
	}

	notification.Send(ctx, s.Notifier, notification.Message{
		Title:       "Booking Initiated",
		Description: fmt.Sprintf("Booking slot for %s. Please fill out the booking form.", normalized),
	}, s.logger())
	return view, nil
}

// Stats summarises the bookings shown on date. Cancelled bookings are counted by
// status but excluded from the totals.
func (s *DefaultScheduleService) Stats(ctx context.Context, date time.Time) (*models.BookingStats, error) {
	bookings, err := s.Catalog.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	dateStr := date.Format(utils.DateLayout)
	stats := &models.BookingStats{
		Date:     dateStr,
		ByStatus: map[models.BookingStatus]int{},
	}
	for _, b := range bookingsOn(bookings, dateStr) {
		stats.ByStatus[b.Status]++
		if b.Status == models.BookingCancelled {
			continue
		}
		stats.TotalBookings++
		stats.CreditsUsed += b.Credits
		stats.TotalAttendees += b.Attendees
	}
	return stats, nil
}

// Upcoming lists non-cancelled bookings ordered by start time.
func (s *DefaultScheduleService) Upcoming(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Catalog.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	out := slices.DeleteFunc(bookings, func(b models.Booking) bool {
		return b.Status == models.BookingCancelled
	})
	slices.SortStableFunc(out, func(a, b models.Booking) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out, nil
}
