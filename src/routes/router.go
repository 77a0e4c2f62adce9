package routes

import (
	"summer-camp-server/src/controllers"
	"summer-camp-server/src/middleware"
	"summer-camp-server/src/services"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Dependencies everything the route table needs, built once in main.
type Dependencies struct {
	Tokens *utils.JWTManager
	Users  *services.UserService

	Auth        *controllers.AuthController
	UserCtl     *controllers.UserController
	Classes     *controllers.ClassController
	Carts       *controllers.CartController
	Payments    *controllers.PaymentController
	Instructors *controllers.InstructorController
}

func InitRoutes(app *fiber.App, deps Dependencies) {
	auth := middleware.AuthJWT(deps.Tokens)
	admin := middleware.AdminOnly(deps.Users)

	authRoutes(app, deps)
	paymentRoutes(app, deps, auth, admin)
	userRoutes(app, deps, auth, admin)
	classRoutes(app, deps, auth, admin)
	cartRoutes(app, deps, auth)
	instructorRoutes(app, deps)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Summer camp")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
