package handler

import (
	"errors"

	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto status codes. Unknown errors are logged and hidden.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error, internalMessage string) error {
	status := fiber.StatusInternalServerError
	message := internalMessage

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, service.ErrInvalidInput.Error()
	case errors.Is(err, service.ErrMissingFields):
		status, message = fiber.StatusBadRequest, service.ErrMissingFields.Error()
	case errors.Is(err, service.ErrUserExists):
		status, message = fiber.StatusConflict, service.ErrUserExists.Error()
	case errors.Is(err, service.ErrUserNotFound):
		status, message = fiber.StatusForbidden, service.ErrUserNotFound.Error()
	case errors.Is(err, service.ErrWrongPassword):
		status, message = fiber.StatusForbidden, service.ErrWrongPassword.Error()
	case errors.Is(err, service.ErrActorNotFound):
		status, message = fiber.StatusUnauthorized, service.ErrActorNotFound.Error()
	case errors.Is(err, service.ErrProductNotFound):
		status, message = fiber.StatusNotFound, service.ErrProductNotFound.Error()
	case errors.Is(err, service.ErrForbidden):
		status, message = fiber.StatusForbidden, service.ErrForbidden.Error()
	default:
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("request failed")
	}

	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
