package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

// AnnouncementController handles announcements. Reads are filtered by the caller's audience.
type AnnouncementController struct {
	announcementService services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List returns the announcements visible to the caller
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	announcements, err := c.announcementService.List(ctx.Request.Context(), principal.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements, ""))
}

// Recent returns the newest announcements visible to the caller
// @Summary Recent announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of announcements" default(5)
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements/recent [get]
func (c *AnnouncementController) Recent(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	limit := helpers.ParseLimitParam(ctx, "limit", services.DefaultRecentAnnouncements, services.MaxRecentAnnouncements)
	announcements, err := c.announcementService.Recent(ctx.Request.Context(), principal.Role, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements, ""))
}

// GetByID returns one announcement
// @Summary Get announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) GetByID(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "announcement")
	if !ok {
		return
	}

	announcement, err := c.announcementService.GetByID(ctx.Request.Context(), principal.Role, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcement, ""))
}

// Create publishes an announcement
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("announcementID", announcement.ID).
		Str("audience", string(announcement.TargetAudience)).
		Msg("Announcement created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(announcement, "Announcement created successfully"))
}

// Update replaces an announcement
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (c *AnnouncementController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "announcement")
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	announcement, err := c.announcementService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcement, "Announcement updated successfully"))
}

// Delete removes an announcement
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "announcement")
	if !ok {
		return
	}

	if err := c.announcementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Announcement deleted successfully"}, ""))
}
