package middleware

import (
	"net/http"
	"runtime/debug"

	"maritime-maintenance/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a logged 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context()).
					WithFields(map[string]interface{}{
						"panic":  r,
						"method": c.Request.Method,
						"path":   c.Request.URL.Path,
						"stack":  string(debug.Stack()),
					}).
					Error("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "internal server error",
				})
			}
		}()
		c.Next()
	}
}
