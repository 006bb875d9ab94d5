// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/middleware"
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

// Register handles user registration
// @Summary Register a new user
// @Description Creates an alumni or student account. Students are approved immediately; alumni wait for admin approval.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, message, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, message))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", resp.User.ID).Msg("User logged in successfully")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login successful"))
}

// Me returns the caller's account
// @Summary Current user
// @Description Returns the authenticated account, including the alumni profile for alumni
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	resp, err := c.authService.Me(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateMe updates the caller's name and email
// @Summary Update current user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Account pending approval"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /auth/me [put]
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.UpdateMe(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Account updated successfully"))
}

// Logout revokes the presented access token
// @Summary Logout
// @Description Revokes the current access token until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	jti, expiresAt := middleware.CurrentToken(ctx)
	if err := c.authService.Logout(ctx.Request.Context(), jti, expiresAt); err != nil {
		c.logger.Error().Err(err).Msg("Logout failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Logged out successfully"}, ""))
}
