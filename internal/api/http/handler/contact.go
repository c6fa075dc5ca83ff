package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/service/contact"
)

type ContactHandler struct {
	svc      contact.Service
	thankYou string
}

func NewContactHandler(svc contact.Service, thankYou string) *ContactHandler {
	return &ContactHandler{svc: svc, thankYou: thankYou}
}

type submitContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type submitContactResponse struct {
	TicketNumber string    `json:"ticketNumber"`
	SubmittedAt  time.Time `json:"submittedAt"`
	NextSteps    []string  `json:"nextSteps"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := bindBody(c, &req); err != nil {
		return invalidBody(c)
	}

	msg, err := h.svc.Submit(c.Context(), contact.CreateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if handled, werr := rejected(c, err); handled {
			return werr
		}
		return err
	}

	return created(c, submitContactResponse{
		TicketNumber: msg.TicketNumber,
		SubmittedAt:  msg.SubmittedAt,
		NextSteps:    h.svc.NextSteps(),
	}, h.thankYou)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return err
	}
	return ok(c, list)
}
