package routes

import (
	"github.com/gofiber/fiber/v2"
)

func paymentRoutes(app *fiber.App, deps Dependencies, auth, admin fiber.Handler) {
	app.Post("/create-payment-intent", auth, deps.Payments.CreatePaymentIntent)

	payments := app.Group("/payments", auth)
	payments.Get("/", deps.Payments.GetPayments)
	payments.Get("/export", admin, deps.Payments.ExportPayments)
	payments.Post("/:id", deps.Payments.RecordPayment)
}
