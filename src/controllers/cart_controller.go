package controllers

import (
	"summer-camp-server/src/middleware"
	"summer-camp-server/src/models"
	"summer-camp-server/src/services"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

type CartController struct {
	Carts *services.CartService
}

// GetMySelectedClasses godoc
// @Summary      List the caller's selected classes
// @Tags         myselectedclass
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Student email (must match the token)"
// @Success      200  {array}   models.SelectedClass
// @Failure      403  {object}  models.ErrorResponse
// @Router       /myselectedclass [get]
func (h *CartController) GetMySelectedClasses(c *fiber.Ctx) error {
	email := c.Query("email")
	if email != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	entries, err := h.Carts.ListByOwner(c.UserContext(), email)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(entries)
}

// GetSelectedClass godoc
// @Summary      Get one selected class
// @Tags         myselectedclass
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Cart entry ID"
// @Success      200  {object}  models.SelectedClass
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /myselectedclass/{id} [get]
func (h *CartController) GetSelectedClass(c *fiber.Ctx) error {
	id, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	entry, err := h.Carts.Owned(c.UserContext(), id, middleware.Email(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(entry)
}

// SelectClass godoc
// @Summary      Add a class to the caller's cart
// @Tags         myselectedclass
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.SelectClassRequest true "Cart entry"
// @Success      200  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /myselectedclass [post]
func (h *CartController) SelectClass(c *fiber.Ctx) error {
	var req models.SelectClassRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	if req.MyEmail != middleware.Email(c) {
		return utils.Forbidden(c)
	}
	res, err := h.Carts.Select(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}

// UpdateSelectedClass godoc
// @Summary      Update a cart entry
// @Tags         myselectedclass
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                            true "Cart entry ID"
// @Param        body body models.UpdateSelectedClassRequest true "Fields to change"
// @Success      200  {object}  models.UpdateResult
// @Router       /myselectedclass/{id} [patch]
func (h *CartController) UpdateSelectedClass(c *fiber.Ctx) error {
	id, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	var req models.UpdateSelectedClassRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	res, err := h.Carts.Update(c.UserContext(), id, middleware.Email(c), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}

// DeleteSelectedClass godoc
// @Summary      Remove a cart entry by its id
// @Tags         myselectedclass
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Cart entry ID"
// @Success      200  {object}  models.DeleteResult
// @Router       /myselectedclass/{id} [delete]
func (h *CartController) DeleteSelectedClass(c *fiber.Ctx) error {
	id, ok, err := utils.ParseObjectID(c, "id")
	if !ok {
		return err
	}
	res, err := h.Carts.Remove(c.UserContext(), id, middleware.Email(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(res)
}
