package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	api.Post("/contact", h.Submit)
	// TODO: put behind an admin token once one exists; the dump is public today.
	api.Get("/messages", h.List)
}
