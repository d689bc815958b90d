package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"panel-review-be/internal/pkg/apperror"
)

// statusFor maps workflow error codes onto HTTP statuses.
func statusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeValidation, apperror.CodeInvalidPermutation:
		return fiber.StatusBadRequest
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeStageClosed, apperror.CodeDeadlinePassed, apperror.CodeAlreadyGrouped, apperror.CodeNothingToUndo:
		return fiber.StatusConflict
	case apperror.CodeConcurrencyConflict:
		return fiber.StatusConflict
	case apperror.CodeUnavailable:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts errors returned by handlers into JSON
// error responses, so controllers can bubble service errors up unchanged.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusFor(apperror.CodeOf(err))
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
