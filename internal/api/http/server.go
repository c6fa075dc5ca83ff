package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/rd1855/portfolio_backend/config"
	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
	"github.com/rd1855/portfolio_backend/internal/api/http/middleware"
	"github.com/rd1855/portfolio_backend/internal/api/http/router"
	"github.com/rd1855/portfolio_backend/pkg/constants"
	"github.com/rd1855/portfolio_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client `optional:"true"`
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := NewApp(p.Cfg, p.Router, p.Redis, p.OTel != nil && p.Cfg.Observability.Tracing.Enabled)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			logStartup(p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down HTTP server")
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// NewApp builds the fiber app with middleware and routes but does not listen.
func NewApp(cfg *config.Config, r *router.Router, rdb *redis.Client, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second

	app := fiber.New(fiber.Config{
		AppName:      constants.AppName,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ErrorHandler: handler.ErrorHandler,
	})

	configureGlobalMiddleware(app, cfg, rdb)

	if tracing {
		app.Use(observability.FiberMiddleware())
	}

	r.Register(app)

	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORS.AllowOrigins,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
		}))
	}

	if cfg.IsProduction() {
		app.Use(helmet.New())
	}
	if cfg.IsProduction() || cfg.Server.RateLimit.Enabled {
		app.Use(middleware.NewLimiter(cfg.Server.RateLimit, rdb))
	}

	app.Use(logger.New(logger.Config{
		Format: "${time} - ${method} ${url} ${status} ${latency} [req_id=${respHeader:X-Request-Id}]\n",
	}))
}

func logStartup(cfg *config.Config) {
	slog.Info("portfolio backend running",
		"version", constants.AppVersion,
		"url", fmt.Sprintf("http://localhost:%d", cfg.Server.Port),
		"environment", cfg.Server.Environment,
		"ledger", cfg.Ledger.Backend,
	)
	for _, e := range router.Endpoints() {
		slog.Info("endpoint", "route", e.String(), "description", e.Description)
	}
}
