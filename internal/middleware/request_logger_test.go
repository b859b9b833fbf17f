package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cadastro/internal/handlers"
	"cadastro/internal/middleware"
	"cadastro/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-1" }}))
	app.Use(middleware.RequestLogger(logger, "form"))
	app.Post("/:form", func(c *fiber.Ctx) error {
		c.Locals("form", c.Params("form"))
		return c.Status(fiber.StatusUnprocessableEntity).SendString("rejected")
	})

	form := url.Values{"cpf": {"123.456.789-09"}}
	req := httptest.NewRequest(http.MethodPost, "/cliente", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/cliente", entry["path"])
	assert.Equal(t, "cliente", entry["form"])
	assert.EqualValues(t, 422, entry["status"])
	assert.NotContains(t, buf.String(), "123.456.789-09")
}

func TestRequestLogger_HandlerError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger, "form"))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.ErrServiceUnavailable
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 503, entry["status"])
	_, hasForm := entry["form"]
	assert.False(t, hasForm)
}

func TestRequestLogger_LogsStatusFromErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.RequestLogger(logger, handlers.LocalForm))
	app.Get("/api/v1/forms/:form", func(c *fiber.Ctx) error {
		c.Locals(handlers.LocalForm, "pedido")
		return repositories.ErrFormNotFound
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/forms/pedido", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.EqualValues(t, 404, entry["status"])
	assert.Equal(t, "pedido", entry["form"])
}
