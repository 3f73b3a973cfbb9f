package models

// Affordance is the presentation tag a status maps to.
type Affordance string

const (
	AffordancePositive    Affordance = "positive"
	AffordanceCaution     Affordance = "caution"
	AffordanceNegative    Affordance = "negative"
	AffordanceNeutral     Affordance = "neutral"
	AffordanceDefault     Affordance = "default"
	AffordanceSecondary   Affordance = "secondary"
	AffordanceDestructive Affordance = "destructive"
	AffordanceOutline     Affordance = "outline"
)

// SlotView is one hourly cell of the booking calendar.
type SlotView struct {
	Time       string     `json:"time"` // "HH:00"
	Available  bool       `json:"available"`
	Booking    *Booking   `json:"booking,omitempty"`
	Affordance Affordance `json:"affordance,omitempty"`
}

// DaySchedule is the resolved calendar grid for one date.
type DaySchedule struct {
	Date  string     `json:"date"`  // "YYYY-MM-DD"
	Label string     `json:"label"` // e.g. "Monday, October 19, 2026"
	Slots []SlotView `json:"slots"`
}
