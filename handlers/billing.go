package handlers

import (
	"errors"
	"net/http"

	"workhub/services/billing"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BillingHandler struct {
	Service billing.BillingService
	Now     Clock
}

func NewBillingHandler(service billing.BillingService, now Clock) *BillingHandler {
	return &BillingHandler{Service: service, Now: now}
}

func (h *BillingHandler) ListInvoicesHandler(c *gin.Context) {
	var filter billing.InvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	invoices, err := h.Service.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list invoices", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

func (h *BillingHandler) BillingStatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load billing stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BillingHandler) GenerateInvoiceHandler(c *gin.Context) {
	var req struct {
		Member string `json:"member" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	draft, err := h.Service.GenerateInvoice(c.Request.Context(), req.Member)
	if err != nil {
		if errors.Is(err, billing.ErrMemberRequired) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		getLogger(c).Error("Failed to generate invoice", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate invoice", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New invoice has been created successfully.",
		"invoice": draft,
	})
}

func (h *BillingHandler) ExportInvoicesHandler(c *gin.Context) {
	report, err := h.Service.ExportCSV(c.Request.Context(), h.Now.now())
	if err != nil {
		getLogger(c).Error("Failed to export invoices", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export invoices", err.Error())
		return
	}
	sendReport(c, report)
}
