package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/store"
)

// NewErrorHandler builds the central fiber error handler. Every failure
// surfaces as JSON {success:false, message}; unknown errors downgrade to a
// generic message in production.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else if !production {
			message = err.Error()
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}

// storeError maps store sentinel errors onto HTTP errors. notFoundMsg
// names the entity so 404 responses stay specific.
func storeError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		return fiber.NewError(fiber.StatusBadRequest, "duplicate value for a unique field")
	}
	return err
}
