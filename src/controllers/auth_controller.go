package controllers

import (
	"summer-camp-server/src/models"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Tokens *utils.JWTManager
}

// IssueToken godoc
// @Summary      Exchange an identity payload for an access token
// @Description  No password check: the client is trusted to have signed the user in.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.SignInRequest true "Identity"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /jwt [post]
func (h *AuthController) IssueToken(c *fiber.Ctx) error {
	var req models.SignInRequest
	if ok, err := utils.ParseBody(c, &req); !ok {
		return err
	}
	token, err := h.Tokens.GenerateJWT(req.Email, req.Name)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Token: token})
}
