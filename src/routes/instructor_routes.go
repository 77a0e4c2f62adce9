package routes

import (
	"github.com/gofiber/fiber/v2"
)

func instructorRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/instructors", deps.Instructors.GetInstructors)
}
