package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathsmania/backend/internal/users"
	"github.com/mathsmania/backend/pkg/logger"
	"github.com/mathsmania/backend/pkg/metrics"
)

// UserHandler serves account registration and login.
type UserHandler struct {
	svc *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(r *gin.Engine) {
	u := r.Group("/api/users")
	u.POST("/register", h.RegisterUser)
	u.POST("/login", h.Login)
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req users.RegisterInput
	_ = c.ShouldBindJSON(&req)

	pub, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		// validation and conflict both serialize as a 400 with the message
		// as the only discriminator
		if errors.Is(err, users.ErrMissingFields) || errors.Is(err, users.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": err.Error()})
			return
		}
		logger.Errorf("user register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	metrics.UsersRegistered.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": pub})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&req)

	pub, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "msg": err.Error()})
			return
		}
		logger.Errorf("user login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": pub})
}
