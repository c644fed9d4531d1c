package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con zerolog y propaga X-Request-ID
// (se genera un UUID si el cliente no lo envía).
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(fiber.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, reqID)
		c.Locals(LocalRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = logger.Error().Err(err)
		case status >= 400:
			ev = logger.Warn()
		default:
			ev = logger.Info()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// GetRequestID devuelve el request id asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
