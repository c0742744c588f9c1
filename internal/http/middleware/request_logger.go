package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-backend/internal/logger"
)

// HTTPObserver учитывает обработанные запросы в метриках.
type HTTPObserver interface {
	ObserveHTTP(route, method, status string)
}

// RequestLogger пишет строку лога на каждый запрос и отдаёт его в метрики.
func RequestLogger(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if observer != nil {
			observer.ObserveHTTP(route, c.Request.Method, strconv.Itoa(status))
		}

		entry := logger.Get().WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": RequestID(c),
		})

		switch {
		case status >= 500:
			entry.Warn("http request")
		case route == "/health" || route == "/metrics":
			entry.Debug("http request")
		default:
			entry.Info("http request")
		}
	}
}
