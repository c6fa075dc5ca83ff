package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
)

func (r *Router) registerContentRoutes(api fiber.Router, h *handler.PortfolioHandler) {
	api.Get("/portfolio", h.Portfolio)
	api.Get("/skills", h.Skills)
	api.Get("/experience", h.Experience)
	api.Get("/certifications", h.Certifications)
	api.Get("/resume", h.Resume)
}
