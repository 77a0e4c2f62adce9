package routes

import (
	"github.com/gofiber/fiber/v2"
)

func cartRoutes(app *fiber.App, deps Dependencies, auth fiber.Handler) {
	cart := app.Group("/myselectedclass", auth)
	cart.Get("/", deps.Carts.GetMySelectedClasses)
	cart.Post("/", deps.Carts.SelectClass)
	cart.Get("/:id", deps.Carts.GetSelectedClass)
	cart.Patch("/:id", deps.Carts.UpdateSelectedClass)
	cart.Delete("/:id", deps.Carts.DeleteSelectedClass)
}
