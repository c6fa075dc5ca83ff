package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/service/analytics"
)

type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

type pageViewRequest struct {
	Page string `json:"page" form:"page"`
}

func (h *AnalyticsHandler) PageView(c fiber.Ctx) error {
	var req pageViewRequest
	if err := bindBody(c, &req); err != nil {
		return invalidBody(c)
	}

	pv, err := h.svc.RecordPageView(c.Context(), req.Page)
	if err != nil {
		if handled, werr := rejected(c, err); handled {
			return werr
		}
		return err
	}
	return ok(c, pv)
}
