package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/factuurdesk/facturatie-api/pkg/metrics"
)

// MetricsMiddleware records request counts and durations per route. The
// route template (not the raw path) is the label, so /api/invoices/:id stays
// one series.
func MetricsMiddleware(rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		rec.ObserveRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
