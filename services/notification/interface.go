package notification

import (
	"context"

	"workhub/models"

	"go.uber.org/zap"
)

// Message is what a dashboard toast carries.
type Message struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"` // "default" or "destructive"
}

// Notifier delivers transient operator notifications. Delivery is fire-and-forget:
// there is no acknowledgement beyond the returned error.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Send notifies n and logs a failure instead of returning it, so a broken sink
// never fails the operation that triggered it.
func Send(ctx context.Context, n Notifier, msg Message, logger *zap.Logger) {
	if n == nil {
		return
	}
	if msg.Variant == "" {
		msg.Variant = models.VariantDefault
	}
	if err := n.Notify(ctx, msg); err != nil && logger != nil {
		logger.Warn("notification delivery failed",
			zap.String("title", msg.Title), zap.Error(err))
	}
}
