package schedule

import (
	"fmt"

	"workhub/models"
)

// ResolveSlot returns the first booking, in catalog order, whose half-open interval
// [StartTime, EndTime) contains slot. Times compare as strings, which is only sound
// for zero-padded same-day "HH:MM" values; the catalog normalizes them on load.
// Overlapping bookings are not reported: later matches are never returned.
func ResolveSlot(slot string, bookings []models.Booking) *models.Booking {
	for i := range bookings {
		if bookings[i].StartTime <= slot && bookings[i].EndTime > slot {
			return &bookings[i]
		}
	}
	return nil
}

// TimeSlots generates count hourly labels starting at openingHour ("08:00", "09:00", ...).
func TimeSlots(openingHour, count int) []string {
	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, fmt.Sprintf("%02d:00", openingHour+i))
	}
	return slots
}

// StatusAffordance maps a booking status to its presentation tag.
func StatusAffordance(status models.BookingStatus) models.Affordance {
	switch status {
	case models.BookingConfirmed:
		return models.AffordancePositive
	case models.BookingPending:
		return models.AffordanceCaution
	case models.BookingCancelled:
		return models.AffordanceNegative
	default:
		return models.AffordanceNeutral
	}
}

// ResolveDay resolves every slot against bookings.
func ResolveDay(slots []string, bookings []models.Booking) []models.SlotView {
	views := make([]models.SlotView, len(slots))
	for i, slot := range slots {
		view := models.SlotView{Time: slot, Available: true}
		if b := ResolveSlot(slot, bookings); b != nil {
			booking := *b
			view.Available = false
			view.Booking = &booking
			view.Affordance = StatusAffordance(b.Status)
		}
		views[i] = view
	}
	return views
}

// bookingsOn keeps undated bookings plus those dated on date, preserving order.
func bookingsOn(bookings []models.Booking, date string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == "" || b.Date == date {
			out = append(out, b)
		}
	}
	return out
}
