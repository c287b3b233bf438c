package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/pkg/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery logs panics with the request path and converts them into a JSON
// 500 instead of tearing down the connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Errorw("panic recovered", "path", c.Request.URL.Path, "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()
		c.Next()
	}
}
