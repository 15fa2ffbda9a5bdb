package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/toolbox-api/internal/interfaces/http"
)

func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": apphttp.GetRequestID(c)})
	})
	return app
}

// Sin header del cliente se genera un UUID y se devuelve en la respuesta.
func TestRequestID_GeneraUnIdentificador(t *testing.T) {
	app := buildMiddlewareApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

// El id enviado por el cliente se propaga sin cambios.
func TestRequestID_PropagaElDelCliente(t *testing.T) {
	app := buildMiddlewareApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apphttp.HeaderRequestID, "corr-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "corr-123", resp.Header.Get(apphttp.HeaderRequestID))
}
