// error_utils.go
package utils

import (
	"context"
	"errors"
	"log"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"
	"summer-camp-server/src/services"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error:   true,
		Status:  status,
		Message: message,
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return HandleError(c, fiber.StatusUnauthorized, "unauthorized access")
}

func Forbidden(c *fiber.Ctx) error {
	return HandleError(c, fiber.StatusForbidden, "forbidden access")
}

// HandleServiceError แปลง error จาก service/repository เป็น status ที่เหมาะสม
func HandleServiceError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrForbidden):
		return Forbidden(c)
	case errors.Is(err, services.ErrInvalidRole):
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateCheckout):
		return HandleError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrDuplicate):
		return HandleError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("⚠️ %s %s timed out: %v", c.Method(), c.OriginalURL(), err)
		return HandleError(c, fiber.StatusGatewayTimeout, "request timed out")
	case errors.As(err, &fe):
		return HandleError(c, fe.Code, fe.Message)
	}
	log.Printf("❌ %s %s: %v", c.Method(), c.OriginalURL(), err)
	return HandleError(c, fiber.StatusInternalServerError, "internal server error")
}

// FiberErrorHandler is installed as fiber.Config.ErrorHandler.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return HandleError(c, fe.Code, fe.Message)
	}
	return HandleServiceError(c, err)
}
