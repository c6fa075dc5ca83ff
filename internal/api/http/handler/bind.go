package handler

import "github.com/gofiber/fiber/v3"

// bindBody decodes a JSON or form-encoded body into out. An empty body leaves
// out untouched so the service reports the missing fields. A body without a
// content type is read as JSON.
func bindBody(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if c.Get(fiber.HeaderContentType) == "" {
		return c.Bind().JSON(out)
	}
	return c.Bind().Body(out)
}
