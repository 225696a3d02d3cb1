package apperrors

import (
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/api/contract"
	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/entity"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

var statusMap = map[string]int{
	constants.ErrCodeValidationFailed:    fiber.StatusBadRequest,
	constants.ErrCodeForbiddenAccess:     fiber.StatusForbidden,
	constants.ErrCodeUserNotFound:        fiber.StatusNotFound,
	constants.ErrCodeMovieNotFound:       fiber.StatusNotFound,
	constants.ErrCodeInsufficientBalance: fiber.StatusConflict,
	constants.ErrCodeMovieAlreadyOwned:   fiber.StatusConflict,
	constants.ErrCodeUsernameTaken:       fiber.StatusConflict,
	constants.ErrCodeInvalidCredentials:  fiber.StatusUnauthorized,
	constants.ErrCodeOperationFailed:     fiber.StatusInternalServerError,
}

// ErrorHandler translates service and entity errors into client responses.
// Anything unrecognized becomes an opaque 500; the detail stays server-side.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.ResponseError{
				Status:  "fail",
				Message: fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(contract.ResponseError{
			Status:  "error",
			Message: "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status, known := statusMap[err.Code]
	if !known {
		status = fiber.StatusInternalServerError
	}

	message := constants.GetErrorMessage(err.Code)

	// Entity validation failures carry a dotted code with a dedicated
	// client message.
	var validationErr *entity.ValidationError
	if errors.As(err.Cause, &validationErr) {
		message = TranslateValidationError(validationErr)
	}

	return c.Status(status).JSON(contract.ResponseError{
		Status:  "fail",
		Code:    err.Code,
		Message: message,
	})
}
