package models

import "time"

// Receipt acknowledges an accepted form submission.
type Receipt struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	AcceptedAt time.Time `json:"acceptedAt"`
}
