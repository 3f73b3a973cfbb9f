package handlers

import (
	"errors"
	"net/http"

	"workhub/services/forms"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FormHandler struct {
	Service forms.FormService
}

func NewFormHandler(service forms.FormService) *FormHandler {
	return &FormHandler{Service: service}
}

func (h *FormHandler) SubmitMemberHandler(c *gin.Context) {
	var form forms.MemberForm
	h.submit(c, &form, func() forms.Form { return form })
}

func (h *FormHandler) SubmitLeadHandler(c *gin.Context) {
	var form forms.LeadForm
	h.submit(c, &form, func() forms.Form { return form })
}

func (h *FormHandler) SubmitBookingHandler(c *gin.Context) {
	var form forms.BookingForm
	h.submit(c, &form, func() forms.Form { return form })
}

// submit decodes the body into dst and submits the decoded form.
func (h *FormHandler) submit(c *gin.Context, dst any, decoded func() forms.Form) {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	receipt, err := h.Service.Submit(c.Request.Context(), decoded())
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldErrors(c, "Please correct the highlighted fields", verr.Fields)
			return
		}
		getLogger(c).Error("Failed to accept submission", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit form", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"receipt": receipt})
}
