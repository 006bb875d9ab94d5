package dto

import "github.com/yigit/alumnet/internal/app/models"

// CreateMentorshipRequest is sent by a student to an alumni mentor
type CreateMentorshipRequest struct {
	AlumniID int64  `json:"alumni_id" binding:"required,min=1" example:"7"`
	Message  string `json:"message" binding:"max=2000"`
}

// UpdateMentorshipStatusRequest moves a pending request to a terminal state
type UpdateMentorshipStatusRequest struct {
	Status models.MentorshipStatus `json:"status" binding:"required,oneof=accepted rejected" example:"accepted"`
}
