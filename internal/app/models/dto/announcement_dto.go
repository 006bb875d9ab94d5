package dto

import "github.com/yigit/alumnet/internal/app/models"

// AnnouncementRequest creates or replaces an announcement
type AnnouncementRequest struct {
	Title          string          `json:"title" binding:"required,notblank,max=255"`
	Description    string          `json:"description" binding:"required,notblank"`
	TargetAudience models.Audience `json:"target_audience" binding:"omitempty,oneof=all alumni students" example:"all"`
}

// Audience returns the requested audience, defaulting to everyone
func (r AnnouncementRequest) Audience() models.Audience {
	if r.TargetAudience == "" {
		return models.AudienceAll
	}
	return r.TargetAudience
}
