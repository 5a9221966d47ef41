package middleware

import (
	"fmt"
	"time"

	"github.com/askroom/askroom/pkg/infra/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MetricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) *MetricsMiddleware {
	return &MetricsMiddleware{
		logger: logger,
	}
}

func (m *MetricsMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		metrics.RequestTotal.WithLabelValues(
			c.Method(),
			path,
			statusClass(c.Response().StatusCode()),
		).Inc()
		metrics.RequestLatency.WithLabelValues(path).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}

// statusClass collapses status codes into their class to keep cardinality low.
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}

type Transport struct {
	MetricsMiddleware *MetricsMiddleware
}
