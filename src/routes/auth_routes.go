package routes

import (
	"time"

	"summer-camp-server/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App, deps Dependencies) {
	app.Post("/jwt", middleware.SignInRateLimiter(10, time.Minute), deps.Auth.IssueToken)
}
