package notification

import (
	"context"
	"sync"
	"time"

	"workhub/models"

	"github.com/google/uuid"
)

// Feed keeps the most recent notifications in memory for the dashboard to poll.
// Older entries are dropped once size is reached.
type Feed struct {
	mu    sync.Mutex
	items []models.Notification
	size  int
	now   func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{size: size, now: time.Now}
}

func (f *Feed) Notify(ctx context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, models.Notification{
		ID:          uuid.New().String(),
		Title:       msg.Title,
		Description: msg.Description,
		Variant:     msg.Variant,
		CreatedAt:   f.now(),
	})
	if over := len(f.items) - f.size; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
	return nil
}

// Recent returns up to limit notifications, newest first. limit <= 0 means all.
func (f *Feed) Recent(limit int) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.items)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, f.items[i])
	}
	return out
}
