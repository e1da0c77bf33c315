package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-records-backend/lib/metrics"
)

// Metrics counts the requests by the matched route pattern, not the raw path.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fErr, ok := err.(*fiber.Error); ok {
				status = fErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start).Seconds())
		return err
	}
}
