package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"foodwaste/internal/domain"
	applog "foodwaste/internal/log"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnknownTable):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownQuery):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrSourceUnavailable), errors.Is(err, domain.ErrSchemaMismatch):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// fail logs err under action and answers with a JSON error. Client
// errors carry the message; server errors do not leak internals.
func fail(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	code := statusOf(err)
	c.Status(code)
	if code == fiber.StatusInternalServerError {
		applog.Error(c, action, err, fields)
		return c.JSON(fiber.Map{"error": "something went wrong, please try again"})
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["err"] = err.Error()
	applog.Warn(c, action, fields)
	return c.JSON(fiber.Map{"error": err.Error()})
}

// badInput rejects a request field before any service call.
func badInput(c *fiber.Ctx, field, msg string) error {
	applog.Warn(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// ErrorHandler is the app-wide fallback for errors no handler answered.
// It logs the cause and renders the error page without it.
func ErrorHandler(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	code := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = "Page not found"
		if code != fiber.StatusNotFound {
			msg = "The request could not be handled."
		}
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
