package handlers

import (
	"errors"
	"net/http"

	"workhub/services/spaces"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SpaceHandler struct {
	Service spaces.SpaceService
}

func NewSpaceHandler(service spaces.SpaceService) *SpaceHandler {
	return &SpaceHandler{Service: service}
}

func spaceErrorStatus(err error) int {
	switch {
	case errors.Is(err, spaces.ErrWorkspaceNotFound):
		return http.StatusNotFound
	case errors.Is(err, spaces.ErrWorkspaceUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *SpaceHandler) ListSpacesHandler(c *gin.Context) {
	var filter spaces.WorkspaceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	list, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list workspaces", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load workspaces", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": list, "count": len(list)})
}

func (h *SpaceHandler) SpaceStatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load workspace stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *SpaceHandler) GetSpaceHandler(c *gin.Context) {
	w, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, spaceErrorStatus(err), "Failed to load workspace", err.Error())
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *SpaceHandler) BookSpaceHandler(c *gin.Context) {
	w, err := h.Service.BookNow(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, spaceErrorStatus(err), "Workspace cannot be booked", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Booking initiated. Please fill out the booking form.",
		"workspace": w,
	})
}
