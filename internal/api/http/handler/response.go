package handler

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rd1855/portfolio_backend/internal/validation"
	"github.com/rd1855/portfolio_backend/pkg/reqctx"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// fail writes the error envelope. extra keys are merged next to "error".
func fail(c fiber.Ctx, status int, msg string, extra fiber.Map) error {
	body := fiber.Map{"success": false, "error": msg}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, msg, nil)
}

func invalidBody(c fiber.Ctx) error {
	return badRequest(c, "Invalid request body")
}

// rejected maps a validation failure to 400. Missing contact fields carry the
// list of required names; a missing page does not.
func rejected(c fiber.Ctx, err error) (bool, error) {
	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		return false, nil
	}
	var extra fiber.Map
	if ve.Kind == validation.MissingField && len(ve.Fields) > 1 {
		extra = fiber.Map{"required": ve.Fields}
	}
	return true, fail(c, fiber.StatusBadRequest, ve.Error(), extra)
}

// NewRequestID returns a short correlation token for a failed request.
func NewRequestID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36)
}

// ErrorHandler is the app-wide fiber error handler. Fiber errors keep their
// status; anything else is an opaque 500 whose detail only reaches the log.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return fail(c, fe.Code, "Endpoint not found", nil)
		}
		return fail(c, fe.Code, fe.Message, nil)
	}

	requestID := NewRequestID(time.Now())
	slog.ErrorContext(c.Context(), "server error",
		"err", err,
		"request_id", requestID,
		"x_request_id", reqctx.RequestIDFromContext(c.Context()),
		"method", c.Method(),
		"path", c.Path(),
	)
	return fail(c, fiber.StatusInternalServerError, "Internal server error", fiber.Map{"requestId": requestID})
}

// NotFound answers every unmatched route with the list of public endpoints.
func NotFound(endpoints []string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, "Endpoint not found", fiber.Map{"availableEndpoints": endpoints})
	}
}
