package controllers

import (
	"summer-camp-server/src/middleware"
	"summer-camp-server/src/models"
	"summer-camp-server/src/services"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users *services.UserService
}

// GetUsers godoc
// @Summary      List all users (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.User
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /users [get]
func (h *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(users)
}

// CreateUser godoc
// @Summary      Register a user once per email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body models.CreateUserRequest true "User"
// @Success      200  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users [post]
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	res, exists, err := h.Users.Register(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if exists {
		return c.JSON(models.MessageResponse{Message: "user already exist"})
	}
	return c.JSON(res)
}

// CheckRole returns {"<role>": bool} for the caller's own email.
// @Summary      Check the caller's role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Email (must match the token)"
// @Success      200  {object}  models.RoleCheckResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /users/admin/{email} [get]
// @Router       /users/student/{email} [get]
// @Router       /users/instructor/{email} [get]
func (h *UserController) CheckRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		if email != middleware.Email(c) {
			return utils.Forbidden(c)
		}
		has, err := h.Users.HasRole(c.UserContext(), email, role)
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		return c.JSON(models.RoleCheckResponse{role: has})
	}
}

// Promote godoc
// @Summary      Set a user's role (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  models.UpdateResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /users/admin/{id} [patch]
// @Router       /users/instructor/{id} [patch]
func (h *UserController) Promote(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := utils.ParseObjectID(c, "id")
		if !ok {
			return err
		}
		res, err := h.Users.Promote(c.UserContext(), id, role)
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		return c.JSON(res)
	}
}
