package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
)

func (r *Router) registerAnalyticsRoutes(api fiber.Router, h *handler.AnalyticsHandler) {
	api.Post("/analytics/pageview", h.PageView)
}
