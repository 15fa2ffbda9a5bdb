package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/toolbox-api/pkg/logger"
)

const (
	// HeaderRequestID header de correlación; se respeta el del cliente si viene.
	HeaderRequestID = "X-Request-ID"

	localRequestID = "request_id"
)

// RequestID asigna (o propaga) un identificador de petición y lo expone en
// la respuesta y en los locals del contexto.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID retorna el id de correlación de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

// AccessLog registra cada petición con método, ruta, status, latencia y
// request id. Los errores ya traducidos a respuesta no se re-loguean aquí.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(c)).
			Msg("http")
		return err
	}
}
