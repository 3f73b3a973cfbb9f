package models

import "time"

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a transient message shown to dashboard operators.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
