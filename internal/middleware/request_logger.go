package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request. It never logs bodies or form
// values, which carry personal data.
func RequestLogger(logger zerolog.Logger, formKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Answer the error here so the logged status is the one sent.
		if err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		event := logger.Info()
		if status >= fiber.StatusInternalServerError {
			event = logger.Error().Err(err)
		} else if status >= fiber.StatusBadRequest {
			event = logger.Warn()
		}

		event = event.
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if form, ok := c.Locals(formKey).(string); ok && form != "" {
			event = event.Str("form", form)
		}
		event.Msg("request")
		return nil
	}
}
