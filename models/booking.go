package models

// BookingStatus is the lifecycle state shown on a calendar booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reserved interval on a named space.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	Title     string        `bson:"title" json:"title"`
	Space     string        `bson:"space" json:"space"`
	StartTime string        `bson:"startTime" json:"startTime"` // "HH:MM", 24h, zero padded
	EndTime   string        `bson:"endTime" json:"endTime"`     // "HH:MM", exclusive
	Attendees int           `bson:"attendees" json:"attendees"`
	Credits   int           `bson:"credits" json:"credits"` // cost in internal credits
	Status    BookingStatus `bson:"status" json:"status"`
	Date      string        `bson:"date,omitempty" json:"date,omitempty"` // optional "YYYY-MM-DD"; empty = every day
}

// BookingStats summarises the bookings visible on one day.
type BookingStats struct {
	Date           string                `json:"date"`
	TotalBookings  int                   `json:"totalBookings"`
	CreditsUsed    int                   `json:"creditsUsed"`
	TotalAttendees int                   `json:"totalAttendees"`
	ByStatus       map[BookingStatus]int `json:"byStatus"`
}
