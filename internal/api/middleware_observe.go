package api

import (
	"strconv"
	"time"

	"github.com/aerosenselabs/aerosense/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestObserver logs each request and feeds the prometheus counters.
func RequestObserver(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := c.Response().StatusCode()
		duration := time.Since(start).Seconds()

		metrics.ReqCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		metrics.ReqDuration.WithLabelValues(c.Method(), path).Observe(duration)

		logger.Info("http_request",
			zap.String("method", c.Method()),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Float64("duration", duration),
			zap.String("client_ip", c.IP()),
		)

		return err
	}
}
