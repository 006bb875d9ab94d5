package dto

// UpdateAlumniProfileRequest replaces the editable fields of the caller's profile
type UpdateAlumniProfileRequest struct {
	Batch       string `json:"batch" binding:"max=20" example:"2018"`
	Phone       string `json:"phone" binding:"max=30"`
	Company     string `json:"company" binding:"max=255"`
	Designation string `json:"designation" binding:"max=255"`
	Location    string `json:"location" binding:"max=255"`
	Skills      string `json:"skills"`
	LinkedIn    string `json:"linkedin" binding:"omitempty,url" example:"https://www.linkedin.com/in/jane"`
	Bio         string `json:"bio"`
	IsMentor    *bool  `json:"is_mentor"`
}

// MentorStatusResponse reports the mentor flag after a toggle
type MentorStatusResponse struct {
	IsMentor bool `json:"is_mentor"`
}
