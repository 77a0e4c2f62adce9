package middleware

import (
	"strings"

	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

const LocalEmail = "email"

// AuthJWT ตรวจ Bearer token: ไม่มี header -> 401, token ใช้ไม่ได้ -> 403
func AuthJWT(tokens *utils.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c)
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ParseJWT(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusForbidden, "unauthorized access")
		}

		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// Email returns the authenticated email set by AuthJWT.
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalEmail).(string)
	return email
}
