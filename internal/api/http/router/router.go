package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/rd1855/portfolio_backend/config"
	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
	"github.com/rd1855/portfolio_backend/internal/service/analytics"
	"github.com/rd1855/portfolio_backend/internal/service/contact"
	"github.com/rd1855/portfolio_backend/internal/service/portfolio"
	"github.com/rd1855/portfolio_backend/internal/service/system"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	PortfolioSvc portfolio.Service
	ContactSvc   contact.Service
	AnalyticsSvc analytics.Service
	SystemSvc    system.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts every route. The catch-all 404 goes last so it only sees
// requests nothing else matched.
func (r *Router) Register(app *fiber.App) {
	systemH := handler.NewSystemHandler(r.p.SystemSvc)
	portfolioH := handler.NewPortfolioHandler(r.p.PortfolioSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc, r.p.PortfolioSvc.Contact().ThankYou)
	analyticsH := handler.NewAnalyticsHandler(r.p.AnalyticsSvc)

	// 1. Probes & Metrics
	r.registerProbeRoutes(app, systemH)

	api := app.Group("/api")

	// 2. API
	r.registerSystemRoutes(api, systemH)
	r.registerContentRoutes(api, portfolioH)
	r.registerContactRoutes(api, contactH)
	r.registerAnalyticsRoutes(api, analyticsH)

	// 3. Fallback
	app.Use(handler.NotFound(Listed()))
}

func (r *Router) registerProbeRoutes(app *fiber.App, h *handler.SystemHandler) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: h.Ready,
	}))

	obs := r.p.Cfg.Observability
	if obs.Enabled && obs.Metrics.Enabled {
		path := obs.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
