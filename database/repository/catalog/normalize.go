package catalogRepo

import (
	"fmt"
	"time"

	"workhub/models"
	"workhub/utils"
)

// NormalizeBookings zero-pads booking times so they compare correctly as strings,
// and rejects bookings that end before they start. Overlaps are not checked.
func NormalizeBookings(in []models.Booking) ([]models.Booking, error) {
	out := make([]models.Booking, len(in))
	for i, b := range in {
		if b.ID == "" {
			return nil, fmt.Errorf("booking at index %d has no id", i)
		}
		start, err := utils.NormalizeClock(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s: start: %w", b.ID, err)
		}
		end, err := utils.NormalizeClock(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s: end: %w", b.ID, err)
		}
		if start >= end {
			return nil, fmt.Errorf("booking %s: start %s is not before end %s", b.ID, start, end)
		}
		if b.Attendees < 0 || b.Credits < 0 {
			return nil, fmt.Errorf("booking %s: attendees and credits must be non-negative", b.ID)
		}
		switch b.Status {
		case models.BookingConfirmed, models.BookingPending, models.BookingCancelled:
		default:
			return nil, fmt.Errorf("booking %s: unknown status %q", b.ID, b.Status)
		}
		if b.Date != "" {
			if _, err := time.Parse(utils.DateLayout, b.Date); err != nil {
				return nil, fmt.Errorf("booking %s: invalid date %q", b.ID, b.Date)
			}
		}

		b.StartTime, b.EndTime = start, end
		out[i] = b
	}
	return out, nil
}
