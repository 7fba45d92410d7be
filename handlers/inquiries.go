package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathsmania/backend/internal/inquiries"
	"github.com/mathsmania/backend/pkg/logger"
	"github.com/mathsmania/backend/pkg/metrics"
)

// InquiryHandler serves the public inquiry submission endpoint.
type InquiryHandler struct {
	svc *inquiries.Service
}

func NewInquiryHandler(svc *inquiries.Service) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

func (h *InquiryHandler) Register(r *gin.Engine) {
	r.POST("/api/inquiries", h.Submit)
}

// Submit accepts an inquiry. An absent or malformed body is treated as empty
// input so the presence validation produces the 400, not the decoder.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req inquiries.CreateInput
	_ = c.ShouldBindJSON(&req)

	it, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, inquiries.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": err.Error()})
			return
		}
		logger.Errorf("inquiry create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	metrics.InquiriesSubmitted.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiry": it})
}
