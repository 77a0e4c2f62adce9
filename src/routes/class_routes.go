package routes

import (
	"github.com/gofiber/fiber/v2"
)

func classRoutes(app *fiber.App, deps Dependencies, auth, admin fiber.Handler) {
	classes := app.Group("/classes")
	classes.Get("/", deps.Classes.GetClasses)
	classes.Get("/instructor", auth, deps.Classes.GetInstructorClasses)
	classes.Post("/", auth, deps.Classes.CreateClass)

	// static segments before /:id
	classes.Patch("/deny/:id", auth, admin, deps.Classes.DenyClass)
	classes.Patch("/feedback/:id", auth, admin, deps.Classes.SetFeedback)
	classes.Patch("/:id", auth, admin, deps.Classes.ApproveClass)
}
