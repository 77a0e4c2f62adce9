package controllers

import (
	"context"

	"summer-camp-server/src/middleware"
	"summer-camp-server/src/models"
	"summer-camp-server/src/services"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassController struct {
	Classes *services.ClassService
}

// GetClasses godoc
// @Summary      List all classes
// @Tags         classes
// @Produce      json
// @Success      200  {array}  models.Class
// @Router       /classes [get]
func (h *ClassController) GetClasses(c *fiber.Ctx) error {
	classes, err := h.Classes.List(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(classes)
}

// GetInstructorClasses godoc
// @Summary      List the caller's own classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Instructor email (must match the token)"
// @Success      200  {array}   models.Class
// @Failure      403  {object}  models.ErrorResponse
// @Router       /classes/instructor [get]
func (h *ClassController) GetInstructorClasses(c *fiber.Ctx) error {
	email := c.Query("email")
	if email != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	classes, err := h.Classes.ListByInstructor(c.UserContext(), email)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(classes)
}

// CreateClass godoc
// @Summary      Submit a class for review
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateClassRequest true "Class"
// @Success      200  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /classes [post]
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req models.CreateClassRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	if req.Email != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	res, err := h.Classes.Create(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}

// ApproveClass godoc
// @Summary      Approve a class (admin)
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      200  {object}  models.UpdateResult
// @Router       /classes/{id} [patch]
func (h *ClassController) ApproveClass(c *fiber.Ctx) error {
	return h.update(c, h.Classes.Approve)
}

// DenyClass godoc
// @Summary      Deny a class (admin)
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      200  {object}  models.UpdateResult
// @Router       /classes/deny/{id} [patch]
func (h *ClassController) DenyClass(c *fiber.Ctx) error {
	return h.update(c, h.Classes.Deny)
}

// SetFeedback godoc
// @Summary      Attach review feedback to a class (admin)
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "Class ID"
// @Param        body body models.FeedbackRequest true "Feedback"
// @Success      200  {object}  models.UpdateResult
// @Router       /classes/feedback/{id} [patch]
func (h *ClassController) SetFeedback(c *fiber.Ctx) error {
	id, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	var req models.FeedbackRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	res, err := h.Classes.SetFeedback(c.UserContext(), id, req.Feedback)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}

func (h *ClassController) update(c *fiber.Ctx, apply func(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error)) error {
	id, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	res, err := apply(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}
