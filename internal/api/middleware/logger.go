package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger writes one line per request once the handler chain is done:
// "User<id>" or "Anonymous", method, path with query, and status. 5xx is
// logged at error, 4xx at warn, everything else at info. Preflight requests
// are not logged.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == http.MethodOptions {
			return
		}

		who := "Anonymous"
		ctx := c.Request.Context()
		if id, ok := auth.GetUserID(c); ok {
			who = fmt.Sprintf("User%d", id)
			ctx = context.WithValue(ctx, logger.UserIDKey, id)
		}

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		status := c.Writer.Status()
		entry := logger.WithContext(ctx).WithFields(map[string]interface{}{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		msg := fmt.Sprintf("%s %s %s %d", who, c.Request.Method, path, status)

		var level logrus.Level
		switch {
		case status >= http.StatusInternalServerError:
			level = logrus.ErrorLevel
		case status >= http.StatusBadRequest:
			level = logrus.WarnLevel
		default:
			level = logrus.InfoLevel
		}
		entry.Log(level, msg)
	}
}
