package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/middleware"
)

// UserController handles admin user management
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lists accounts
// @Summary List users
// @Description Lists every account, optionally filtered by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter" Enums(admin, alumni, student)
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid role filter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	role := models.Role(strings.TrimSpace(ctx.Query("role")))
	users, err := c.userService.ListUsers(ctx.Request.Context(), role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users, ""))
}

// ListPendingAlumni lists alumni waiting for approval
// @Summary List pending alumni
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /users/pending [get]
func (c *UserController) ListPendingAlumni(ctx *gin.Context) {
	users, err := c.userService.ListPendingAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users, ""))
}

// Stats returns account counts
// @Summary User statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.UserStats}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /users/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	stats, err := c.userService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetUserByID retrieves user information by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// ApproveUser approves a pending account
// @Summary Approve user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "User is already approved"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/approve [patch]
func (c *UserController) ApproveUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	user, err := c.userService.ApproveUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", id).Msg("User approved")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "User approved successfully"))
}

// UpdateUser updates the name and email of an account
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "User updated successfully"))
}

// DeleteUser deletes an account and everything it owns
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Cannot delete your own account"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), principal.UserID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", id).Int64("deletedBy", principal.UserID).Msg("User deleted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "User deleted successfully"}, ""))
}
