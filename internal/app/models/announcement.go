package models

import "time"

// Audience selects which roles see an announcement
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceAlumni   Audience = "alumni"
	AudienceStudents Audience = "students"
)

// AudiencesFor returns the audiences visible to role. A nil slice means no filtering.
func AudiencesFor(role Role) []Audience {
	switch role {
	case RoleAlumni:
		return []Audience{AudienceAll, AudienceAlumni}
	case RoleStudent:
		return []Audience{AudienceAll, AudienceStudents}
	default:
		return nil
	}
}

// VisibleTo reports whether an announcement for a is shown to role
func (a Audience) VisibleTo(role Role) bool {
	audiences := AudiencesFor(role)
	if audiences == nil {
		return true
	}
	for _, allowed := range audiences {
		if allowed == a {
			return true
		}
	}
	return false
}

// Announcement is a notice published by an admin
type Announcement struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	TargetAudience Audience  `json:"target_audience" db:"target_audience"`
	CreatedBy      *int64    `json:"created_by" db:"created_by"`
	AuthorName     string    `json:"author_name,omitempty"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
