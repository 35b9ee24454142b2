package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

// RequestLogger registra una línea por request con status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqLog := requestLogger(c, log)
		evt := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			evt = reqLog.Error()
		}
		evt.Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return chainErr
	}
}

// requestLogger sublogger con los datos de la petición actual.
func requestLogger(c *fiber.Ctx, log *logger.Logger) *logger.Logger {
	return log.ForRequest(requestID(c), c.Method(), c.Path())
}

// requestID lee el id que dejó el middleware requestid; "" si no está montado.
func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return v
	}
	return ""
}
