package handlers

import (
	"net/http"

	"workhub/services/dashboard"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	Service dashboard.DashboardService
	Now     Clock
}

func NewDashboardHandler(service dashboard.DashboardService, now Clock) *DashboardHandler {
	return &DashboardHandler{Service: service, Now: now}
}

func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	date, ok := dateQuery(c, h.Now.now())
	if !ok {
		return
	}
	summary, err := h.Service.Summary(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Failed to build dashboard summary", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
