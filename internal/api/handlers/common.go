package handlers

import (
	"FridgeMate/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto HTTP status codes. Anything unknown is
// treated as a bad request.
func errorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrScannedItemNotFound),
		errors.Is(err, domain.ErrNoPendingScan):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrGatewayBusy),
		errors.Is(err, domain.ErrResultDiscarded),
		errors.Is(err, domain.ErrScanChanged):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrGeminiProcessingFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusBadRequest
	}
}
