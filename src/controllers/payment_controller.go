package controllers

import (
	"errors"

	"summer-camp-server/src/middleware"
	"summer-camp-server/src/models"
	"summer-camp-server/src/services"
	"summer-camp-server/src/services/gateway"
	"summer-camp-server/src/services/reports"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PaymentController struct {
	Checkout *services.CheckoutService
	Gateway  gateway.PaymentGateway
}

// CreatePaymentIntent godoc
// @Summary      Create a card payment intent for a price
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.PaymentIntentRequest true "Price"
// @Success      200  {object}  models.PaymentIntentResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req models.PaymentIntentRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	secret, err := h.Gateway.CreatePaymentIntent(c.UserContext(), req.Price)
	if errors.Is(err, gateway.ErrInvalidAmount) {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return utils.HandleServiceError(c, fiber.NewError(fiber.StatusBadGateway, "payment gateway error: "+err.Error()))
	}
	return c.JSON(models.PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment godoc
// @Summary      Record a completed payment for a class
// @Description  Stores the payment, takes one seat (never below zero), adds one enrolment and removes the class from the payer's cart.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string         true "Class ID"
// @Param        body body models.Payment true "Payment"
// @Success      200  {object}  models.CheckoutResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /payments/{id} [post]
func (h *PaymentController) RecordPayment(c *fiber.Ctx) error {
	classID, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	var payment models.Payment
	if ok, err := utils.ParseBody(c, &payment); !ok {
		return err
	}
	if payment.MyEmail != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	// _id ถูกสร้างฝั่ง server เสมอ
	payment.ID = primitive.NilObjectID
	res, err := h.Checkout.Checkout(c.UserContext(), classID, &payment)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}

// GetPayments godoc
// @Summary      List the caller's payments, newest first
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Payer email (must match the token)"
// @Success      200  {array}   models.Payment
// @Failure      403  {object}  models.ErrorResponse
// @Router       /payments [get]
func (h *PaymentController) GetPayments(c *fiber.Ctx) error {
	email := c.Query("email")
	if email != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	payments, err := h.Checkout.ListByOwner(c.UserContext(), email)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(payments)
}

// ExportPayments godoc
// @Summary      Download all payments as xlsx (admin)
// @Tags         payments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /payments/export [get]
func (h *PaymentController) ExportPayments(c *fiber.Ctx) error {
	payments, err := h.Checkout.ListAll(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	buf, err := reports.PaymentsWorkbook(payments)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment("payments.xlsx")
	return c.Send(buf.Bytes())
}
