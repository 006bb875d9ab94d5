package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/middleware"
)

// MentorshipController handles mentorship requests between students and alumni
type MentorshipController struct {
	mentorshipService services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// Create sends a mentorship request to an alumni mentor
// @Summary Request mentorship
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest}
// @Failure 400 {object} dto.ErrorResponse "Alumni is not offering mentorship"
// @Failure 403 {object} dto.ErrorResponse "Students only"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 409 {object} dto.ErrorResponse "Mentorship request already exists"
// @Router /mentorship [post]
func (c *MentorshipController) Create(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.CreateMentorshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.mentorshipService.Create(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request, "Mentorship request sent successfully"))
}

// ListSent lists the caller's outgoing requests
// @Summary My mentorship requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SentMentorshipRequest}
// @Failure 403 {object} dto.ErrorResponse "Students only"
// @Router /mentorship/my-requests [get]
func (c *MentorshipController) ListSent(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	requests, err := c.mentorshipService.ListSent(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}

// ListReceived lists requests addressed to the caller
// @Summary Received mentorship requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ReceivedMentorshipRequest}
// @Failure 403 {object} dto.ErrorResponse "Approved alumni only"
// @Router /mentorship/received [get]
func (c *MentorshipController) ListReceived(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	requests, err := c.mentorshipService.ListReceived(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}

// UpdateStatus accepts or rejects a pending request
// @Summary Answer mentorship request
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateMentorshipStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipRequest}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not authorized to update this request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request has already been answered"
// @Router /mentorship/{id}/status [patch]
func (c *MentorshipController) UpdateStatus(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "request")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.mentorshipService.UpdateStatus(ctx.Request.Context(), principal.UserID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("requestID", id).Str("status", string(req.Status)).Msg("Mentorship request answered")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request, "Request "+string(req.Status)))
}

// Delete withdraws or dismisses a request the caller takes part in
// @Summary Delete mentorship request
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Request not found or not authorized"
// @Router /mentorship/{id} [delete]
func (c *MentorshipController) Delete(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "request")
	if !ok {
		return
	}

	if err := c.mentorshipService.Delete(ctx.Request.Context(), principal.UserID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Request deleted successfully"}, ""))
}

// Stats counts requests by status
// @Summary Mentorship statistics
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.MentorshipStats}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /mentorship/stats [get]
func (c *MentorshipController) Stats(ctx *gin.Context) {
	stats, err := c.mentorshipService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
