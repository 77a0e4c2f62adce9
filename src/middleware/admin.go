package middleware

import (
	"context"

	"summer-camp-server/src/models"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

// RoleChecker is satisfied by *services.UserService.
type RoleChecker interface {
	HasRole(ctx context.Context, email, role string) (bool, error)
}

// AdminOnly ต้องใช้หลัง AuthJWT เสมอ
func AdminOnly(users RoleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, err := users.HasRole(c.UserContext(), Email(c), models.RoleAdmin)
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		if !isAdmin {
			return utils.Forbidden(c)
		}
		return c.Next()
	}
}
