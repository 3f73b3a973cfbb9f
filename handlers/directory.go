package handlers

import (
	"net/http"

	"workhub/models"
	"workhub/services/directory"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	Service directory.DirectoryService
}

func NewDirectoryHandler(service directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: service}
}

func (h *DirectoryHandler) ListMembersHandler(c *gin.Context) {
	var filter directory.MemberFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	members, err := h.Service.SearchMembers(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to search members", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load members", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

func (h *DirectoryHandler) MemberStatsHandler(c *gin.Context) {
	stats, err := h.Service.MemberStats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load member stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

type leadView struct {
	models.Lead
	Affordance models.Affordance `json:"affordance"`
}

func (h *DirectoryHandler) ListLeadsHandler(c *gin.Context) {
	var filter directory.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	leads, err := h.Service.SearchLeads(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to search leads", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load leads", err.Error())
		return
	}
	views := make([]leadView, 0, len(leads))
	for _, l := range leads {
		views = append(views, leadView{Lead: l, Affordance: directory.StageAffordance(l.Stage)})
	}
	c.JSON(http.StatusOK, gin.H{"leads": views, "count": len(views)})
}

func (h *DirectoryHandler) LeadStatsHandler(c *gin.Context) {
	stats, err := h.Service.LeadStats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load lead stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
