package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/camilovegag/procesos-de-negocio/internal/api/http/handlers"
	"github.com/camilovegag/procesos-de-negocio/internal/observability"
	apperrors "github.com/camilovegag/procesos-de-negocio/pkg/util/errorutil"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Intake *handlers.IntakeHandler
}

// ServerConfig configures the fiber app built by NewApp.
type ServerConfig struct {
	AppName        string
	BodyLimit      int
	RequestTimeout time.Duration
}

// NewApp builds the fiber app with middlewares and routes installed.
func NewApp(cfg ServerConfig, logger *zap.Logger, metrics *observability.Metrics, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger, metrics),
	})
	RegisterMiddlewares(app, logger, metrics, cfg.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	intake := app.Group("/intake")
	intake.Get("/options", cfg.Intake.Options)
	intake.Post("/validate", cfg.Intake.Validate)
	intake.Post("/submit", cfg.Intake.Submit)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route")
	})
}
