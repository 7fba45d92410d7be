package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathsmania/backend/internal/vacancies"
	"github.com/mathsmania/backend/pkg/logger"
	"github.com/mathsmania/backend/pkg/metrics"
)

// VacancyHandler serves the public vacancy listing/search endpoint.
type VacancyHandler struct {
	svc *vacancies.Service
}

func NewVacancyHandler(svc *vacancies.Service) *VacancyHandler {
	return &VacancyHandler{svc: svc}
}

func (h *VacancyHandler) Register(r *gin.Engine) {
	r.GET("/api/vacancies", h.List)
}

// List returns all vacancies, optionally filtered by the q query parameter.
// Zero matches is a valid empty result.
func (h *VacancyHandler) List(c *gin.Context) {
	list, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Errorf("vacancy search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	metrics.VacancySearches.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "vacancies": list})
}
