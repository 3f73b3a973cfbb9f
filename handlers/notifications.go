package handlers

import (
	"net/http"
	"strconv"

	"workhub/services/notification"
	"workhub/utils"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 20

type NotificationHandler struct {
	Feed *notification.Feed
}

func NewNotificationHandler(feed *notification.Feed) *NotificationHandler {
	return &NotificationHandler{Feed: feed}
}

// ListNotificationsHandler returns the most recent notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = n
	}
	items := h.Feed.Recent(limit)
	c.JSON(http.StatusOK, gin.H{"notifications": items, "count": len(items)})
}
