package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/service"
)

// StatusHandler serves the weekly dashboard card
type StatusHandler struct {
	status *service.StatusService
	auth   middleware.TokenValidator
}

func NewStatusHandler(status *service.StatusService, auth middleware.TokenValidator) *StatusHandler {
	return &StatusHandler{status: status, auth: auth}
}

func (h *StatusHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.auth))
	{
		authed.GET("/status", h.Weekly)
	}
}

func (h *StatusHandler) Weekly(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.status.Weekly(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute weekly status"})
		return
	}

	c.JSON(http.StatusOK, result)
}
