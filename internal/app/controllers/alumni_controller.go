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
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

// AlumniController serves the alumni directory and the caller's own profile
type AlumniController struct {
	alumniService services.AlumniService
	logger        zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService, logger zerolog.Logger) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		logger:        logger,
	}
}

// List returns the approved alumni directory
// @Summary List alumni
// @Description Lists approved alumni with their profiles. Text filters match partially and ignore case.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param batch query string false "Batch"
// @Param company query string false "Company"
// @Param location query string false "Location"
// @Param skills query string false "Skills"
// @Param is_mentor query bool false "Only mentors"
// @Success 200 {object} dto.APIResponse{data=[]models.AlumniDirectoryEntry}
// @Failure 400 {object} dto.ErrorResponse "is_mentor must be true or false"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /alumni [get]
func (c *AlumniController) List(ctx *gin.Context) {
	isMentor, ok := helpers.ParseBoolQuery(ctx, "is_mentor")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("is_mentor must be true or false"))
		return
	}

	filter := models.AlumniFilter{
		Batch:    strings.TrimSpace(ctx.Query("batch")),
		Company:  strings.TrimSpace(ctx.Query("company")),
		Location: strings.TrimSpace(ctx.Query("location")),
		Skills:   strings.TrimSpace(ctx.Query("skills")),
		IsMentor: isMentor,
	}

	alumni, err := c.alumniService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni, ""))
}

// Search finds alumni by name, company, designation or skills
// @Summary Search alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Success 200 {object} dto.APIResponse{data=[]models.AlumniDirectoryEntry}
// @Failure 400 {object} dto.ErrorResponse "Search query is required"
// @Router /alumni/search [get]
func (c *AlumniController) Search(ctx *gin.Context) {
	alumni, err := c.alumniService.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni, ""))
}

// ListMentors returns approved alumni offering mentorship
// @Summary List mentors
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AlumniDirectoryEntry}
// @Router /alumni/mentors [get]
func (c *AlumniController) ListMentors(ctx *gin.Context) {
	mentors, err := c.alumniService.ListMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentors, ""))
}

// GetByUserID returns one alumni's directory entry
// @Summary Get alumni by user ID
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.AlumniDirectoryEntry}
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "Alumni profile not found"
// @Router /alumni/user/{userId} [get]
func (c *AlumniController) GetByUserID(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	entry, err := c.alumniService.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry, ""))
}

// GetMyProfile returns the caller's alumni profile
// @Summary Get my alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AlumniProfile}
// @Failure 403 {object} dto.ErrorResponse "Alumni only"
// @Router /alumni/profile/me [get]
func (c *AlumniController) GetMyProfile(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	profile, err := c.alumniService.GetMyProfile(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, ""))
}

// UpdateMyProfile creates or replaces the caller's alumni profile
// @Summary Update my alumni profile
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAlumniProfileRequest true "Profile"
// @Success 200 {object} dto.APIResponse{data=models.AlumniProfile}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Approved alumni only"
// @Router /alumni/profile/me [put]
func (c *AlumniController) UpdateMyProfile(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAlumniProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, err := c.alumniService.UpdateMyProfile(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile updated successfully"))
}

// ToggleMentor flips the caller's mentor flag
// @Summary Toggle mentor status
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MentorStatusResponse}
// @Failure 403 {object} dto.ErrorResponse "Approved alumni only"
// @Failure 404 {object} dto.ErrorResponse "Alumni profile not found"
// @Router /alumni/mentor/toggle [patch]
func (c *AlumniController) ToggleMentor(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	isMentor, err := c.alumniService.ToggleMentor(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", principal.UserID).Bool("isMentor", isMentor).Msg("Mentor status toggled")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MentorStatusResponse{IsMentor: isMentor}, ""))
}
