package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathsmania/backend/internal/inquiries"
	"github.com/mathsmania/backend/pkg/logger"
	"github.com/mathsmania/backend/pkg/middleware"
)

// AdminHandler serves the key-gated inquiry management endpoints.
type AdminHandler struct {
	svc *inquiries.Service
	key string
}

func NewAdminHandler(svc *inquiries.Service, adminKey string) *AdminHandler {
	return &AdminHandler{svc: svc, key: adminKey}
}

func (h *AdminHandler) Register(r *gin.Engine) {
	a := r.Group("/api/admin", middleware.AdminKey(h.key))
	a.GET("/inquiries", h.List)
	a.POST("/inquiry/:id/status", h.UpdateStatus)
}

// List returns all inquiries, newest first.
func (h *AdminHandler) List(c *gin.Context) {
	list, err := h.svc.ListNewestFirst(c.Request.Context())
	if err != nil {
		logger.Errorf("admin inquiry list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiries": list})
}

// UpdateStatus overwrites the status of one inquiry. The status body field
// is optional; when omitted the record is returned unchanged.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	_ = c.ShouldBindJSON(&req)

	it, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, inquiries.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "msg": err.Error()})
			return
		}
		logger.Errorf("admin status update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiry": it})
}
