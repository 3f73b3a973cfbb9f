package handlers

import (
	"errors"
	"net/http"

	"workhub/services/schedule"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Service schedule.ScheduleService
	Now     Clock
}

func NewScheduleHandler(service schedule.ScheduleService, now Clock) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Now: now}
}

func scheduleErrorStatus(err error) int {
	switch {
	case errors.Is(err, schedule.ErrInvalidSlot), errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, schedule.ErrSlotOccupied):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetDayHandler returns the calendar grid for ?date=.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	date, ok := dateQuery(c, h.Now.now())
	if !ok {
		return
	}
	day, err := h.Service.Day(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Failed to resolve day", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, day)
}

// NavigateDayHandler moves one day from ?date= in the :direction given.
func (h *ScheduleHandler) NavigateDayHandler(c *gin.Context) {
	dir, err := schedule.ParseDirection(c.Param("direction"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid direction", err.Error())
		return
	}
	date, ok := dateQuery(c, h.Now.now())
	if !ok {
		return
	}
	day, err := h.Service.Navigate(c.Request.Context(), date, dir)
	if err != nil {
		getLogger(c).Error("Failed to navigate", zap.Error(err))
		utils.JSONError(c, scheduleErrorStatus(err), "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetSlotHandler resolves a single wall-clock time on ?date=.
func (h *ScheduleHandler) GetSlotHandler(c *gin.Context) {
	date, ok := dateQuery(c, h.Now.now())
	if !ok {
		return
	}
	view, err := h.Service.Slot(c.Request.Context(), date, c.Param("slot"))
	if err != nil {
		utils.JSONError(c, scheduleErrorStatus(err), "Failed to resolve slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// BookSlotHandler starts a booking on a free grid slot.
func (h *ScheduleHandler) BookSlotHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	date, err := schedule.ParseDate(req.Date, h.Now.now())
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	view, err := h.Service.BookNow(c.Request.Context(), date, req.Slot)
	if err != nil {
		status := scheduleErrorStatus(err)
		if status == http.StatusInternalServerError {
			getLogger(c).Error("Failed to book slot", zap.Error(err))
		}
		utils.JSONError(c, status, "Slot cannot be booked", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking initiated. Please fill out the booking form.",
		"slot":    view,
	})
}

func (h *ScheduleHandler) GetBookingStatsHandler(c *gin.Context) {
	date, ok := dateQuery(c, h.Now.now())
	if !ok {
		return
	}
	stats, err := h.Service.Stats(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ScheduleHandler) GetUpcomingHandler(c *gin.Context) {
	bookings, err := h.Service.Upcoming(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "slots": h.Service.Slots()})
}
