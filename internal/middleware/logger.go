package middleware

import (
	"time"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every request once it has been handled.
func RequestLogger(logger log.Interface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := logger.WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": c.Response().StatusCode(),
			"took":   time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("request failed")
			return err
		}
		entry.Debug("request")
		return nil
	}
}
