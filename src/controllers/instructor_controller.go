package controllers

import (
	"summer-camp-server/src/services"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

type InstructorController struct {
	Instructors *services.InstructorService
}

// GetInstructors godoc
// @Summary      Public instructor directory
// @Tags         instructors
// @Produce      json
// @Success      200  {array}  models.Instructor
// @Router       /instructors [get]
func (h *InstructorController) GetInstructors(c *fiber.Ctx) error {
	instructors, err := h.Instructors.List(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(instructors)
}
