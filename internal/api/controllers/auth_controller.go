package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	log         logger.Logger
}

func NewAuthController(authService services.AuthServiceInterface, log logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		log:         log,
	}
}

// IssueToken godoc
// @Summary Get an admin token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.TokenRequest true "Admin credentials"
// @Success 200 {object} response_models.TokenResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token [post]
func (a *AuthController) IssueToken(c *gin.Context) {
	var req request_models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.IssueToken(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondSuccess(c, token, "Token issued successfully")
}
