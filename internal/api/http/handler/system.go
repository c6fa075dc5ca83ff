package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/service/system"
)

type SystemHandler struct {
	svc system.Service
}

func NewSystemHandler(svc system.Service) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// Health writes the snapshot unwrapped, without the success envelope.
func (h *SystemHandler) Health(c fiber.Ctx) error {
	health, err := h.svc.Health(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(health)
}

// Ready is the readiness probe for the fiber healthcheck middleware.
func (h *SystemHandler) Ready(c fiber.Ctx) bool {
	return h.svc.Ready(c.Context())
}
