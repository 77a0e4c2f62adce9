package routes

import (
	"summer-camp-server/src/models"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ User API
func userRoutes(app *fiber.App, deps Dependencies, auth, admin fiber.Handler) {
	users := app.Group("/users")
	users.Get("/", auth, admin, deps.UserCtl.GetUsers)
	users.Post("/", deps.UserCtl.CreateUser)

	users.Get("/admin/:email", auth, deps.UserCtl.CheckRole(models.RoleAdmin))
	users.Get("/student/:email", auth, deps.UserCtl.CheckRole(models.RoleStudent))
	users.Get("/instructor/:email", auth, deps.UserCtl.CheckRole(models.RoleInstructor))

	users.Patch("/admin/:id", auth, admin, deps.UserCtl.Promote(models.RoleAdmin))
	users.Patch("/instructor/:id", auth, admin, deps.UserCtl.Promote(models.RoleInstructor))
}
