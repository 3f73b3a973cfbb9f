package handlers

import (
	"net/http"

	"workhub/services/analytics"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	Service analytics.AnalyticsService
	Now     Clock
}

func NewAnalyticsHandler(service analytics.AnalyticsService, now Clock) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service, Now: now}
}

func (h *AnalyticsHandler) OverviewHandler(c *gin.Context) {
	overview, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to build analytics overview", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) RevenueHandler(c *gin.Context) {
	points, err := h.Service.Revenue(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load revenue", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": points})
}

func (h *AnalyticsHandler) UtilizationHandler(c *gin.Context) {
	buckets, err := h.Service.Utilization(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load utilization", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"utilization": buckets})
}

func (h *AnalyticsHandler) OccupancyHandler(c *gin.Context) {
	points, err := h.Service.Occupancy(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load occupancy", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupancy": points})
}

func (h *AnalyticsHandler) ExportAnalyticsHandler(c *gin.Context) {
	report, err := h.Service.ExportCSV(c.Request.Context(), h.Now.now())
	if err != nil {
		getLogger(c).Error("Failed to export analytics", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export analytics", err.Error())
		return
	}
	sendReport(c, report)
}
