package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
)

func (r *Router) registerSystemRoutes(api fiber.Router, h *handler.SystemHandler) {
	api.Get("/health", h.Health)
}
