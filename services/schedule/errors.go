package schedule

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidSlot      = errors.New("slot is not on the calendar grid")
	ErrSlotOccupied     = errors.New("slot is already booked")
)
