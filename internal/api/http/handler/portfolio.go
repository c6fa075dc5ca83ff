package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/service/portfolio"
)

type PortfolioHandler struct {
	svc portfolio.Service
}

func NewPortfolioHandler(svc portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

func (h *PortfolioHandler) Portfolio(c fiber.Ctx) error {
	return ok(c, h.svc.Portfolio())
}

func (h *PortfolioHandler) Skills(c fiber.Ctx) error {
	return ok(c, h.svc.Skills())
}

func (h *PortfolioHandler) Experience(c fiber.Ctx) error {
	return ok(c, h.svc.Experience())
}

func (h *PortfolioHandler) Certifications(c fiber.Ctx) error {
	return ok(c, h.svc.Certifications())
}

func (h *PortfolioHandler) Resume(c fiber.Ctx) error {
	return ok(c, h.svc.Resume())
}
