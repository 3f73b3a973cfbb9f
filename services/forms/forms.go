package forms

import (
	"fmt"

	"workhub/services/notification"
)

const (
	KindMember  = "member"
	KindLead    = "lead"
	KindBooking = "booking"
)

// Form is a dashboard form that can be validated and submitted.
type Form interface {
	Kind() string
	// Messages maps a json field name to the message shown when it is invalid.
	Messages() map[string]string
	// Success is the notification sent once the submission is processed.
	Success() notification.Message
	// Failure is the notification sent when processing fails.
	Failure() notification.Message
}

type MemberForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Company   string `json:"company" validate:"required"`
	Plan      string `json:"plan" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
}

func (MemberForm) Kind() string { return KindMember }

func (MemberForm) Messages() map[string]string {
	return map[string]string{
		"firstName": "First name is required",
		"lastName":  "Last name is required",
		"email":     "Valid email is required",
		"phone":     "Valid phone number is required",
		"company":   "Company name is required",
		"plan":      "Membership plan is required",
		"startDate": "Start date is required",
	}
}

func (f MemberForm) Success() notification.Message {
	return notification.Message{
		Title:       "Member Added",
		Description: fmt.Sprintf("Successfully added %s %s to %s plan", f.FirstName, f.LastName, f.Plan),
	}
}

func (MemberForm) Failure() notification.Message {
	return failure("member")
}

type LeadForm struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,min=10"`
	Source string `json:"source" validate:"required"`
}

func (LeadForm) Kind() string { return KindLead }

func (LeadForm) Messages() map[string]string {
	return map[string]string{
		"name":   "Name is required",
		"email":  "Valid email is required",
		"phone":  "Valid phone number is required",
		"source": "Lead source is required",
	}
}

func (f LeadForm) Success() notification.Message {
	return notification.Message{
		Title:       "Lead Added",
		Description: fmt.Sprintf("Successfully added %s from %s", f.Name, f.Source),
	}
}

func (LeadForm) Failure() notification.Message {
	return failure("lead")
}

type BookingForm struct {
	Title     string `json:"title" validate:"required"`
	Space     string `json:"space" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
	Attendees int    `json:"attendees" validate:"gte=1"`
}

func (BookingForm) Kind() string { return KindBooking }

func (BookingForm) Messages() map[string]string {
	return map[string]string{
		"title":     "Title is required",
		"space":     "Space is required",
		"date":      "Valid date is required",
		"startTime": "Valid start time is required",
		"endTime":   "End time must be after start time",
		"attendees": "At least one attendee is required",
	}
}

func (f BookingForm) Success() notification.Message {
	return notification.Message{
		Title: "Booking Requested",
		Description: fmt.Sprintf("%s in %s on %s from %s to %s",
			f.Title, f.Space, f.Date, f.StartTime, f.EndTime),
	}
}

func (BookingForm) Failure() notification.Message {
	return failure("booking")
}

func failure(what string) notification.Message {
	return notification.Message{
		Title:       "Error",
		Description: fmt.Sprintf("Failed to add %s. Please try again.", what),
		Variant:     "destructive",
	}
}
