// Package app assembles the HTTP application.
package app

import (
	"fmt"
	"time"

	"cadastro/internal/config"
	"cadastro/internal/handlers"
	"cadastro/internal/middleware"
	"cadastro/internal/repositories"
	"cadastro/internal/schemas"
	"cadastro/internal/services"
	"cadastro/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New builds the Fiber app with every route registered.
func New(cfg *config.Config, log zerolog.Logger) (*fiber.App, error) {
	// --- Repositories ---
	formRepo := repositories.NewMemoryFormRepository()
	for _, form := range schemas.All() {
		if err := formRepo.Register(form); err != nil {
			return nil, fmt.Errorf("failed to register form %s: %w", form.Slug(), err)
		}
	}

	// --- Services ---
	formService := services.NewFormService(formRepo, log)

	// --- Handlers ---
	renderer, err := views.New(log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	formHandler := handlers.NewFormHandler(formService, renderer)
	apiHandler := handlers.NewAPIHandler(formService)

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.IsDev(),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if cfg.LogFormat == "console" {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${respHeader:X-Request-ID} ${status} - ${latency} ${method} ${path}\n",
		}))
	} else {
		app.Use(middleware.RequestLogger(log, handlers.LocalForm))
	}

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	apiHandler.RegisterRoutes(apiV1)

	// --- Pages ---
	formHandler.RegisterRoutes(app)

	return app, nil
}
