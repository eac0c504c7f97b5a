// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/middleware"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary Log in
// @Description Exchanges credentials for a bearer token. The admin uses the configured admin email and password; students use their email and their date of birth (YYYY-MM-DD). Accepts a JSON body or form fields.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or incorrect credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Msg("Login failed")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokenResponse)
}

// Logout handles user logout
// @Summary Log out
// @Description Tokens are stateless, so logging out only tells the client to discard its token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Logged out"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	c.authService.Logout(ctx.Request.Context(), user)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Successfully logged out"})
}

// GetCurrentUser returns the identity behind the bearer token
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Resolved identity"
// @Failure 401 {object} dto.ErrorResponse "Missing, invalid or expired token"
// @Router /user [get]
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
