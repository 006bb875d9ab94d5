package models

import "time"

// AlumniProfile holds the professional details of an alumni account.
// Exactly one profile exists per alumni user.
type AlumniProfile struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Batch       string    `json:"batch" db:"batch" example:"2018"`
	Phone       string    `json:"phone" db:"phone"`
	Company     string    `json:"company" db:"company" example:"Acme"`
	Designation string    `json:"designation" db:"designation" example:"Engineer"`
	Location    string    `json:"location" db:"location"`
	Skills      string    `json:"skills" db:"skills" example:"go,postgres"`
	LinkedIn    string    `json:"linkedin" db:"linkedin"`
	Bio         string    `json:"bio" db:"bio"`
	IsMentor    bool      `json:"is_mentor" db:"is_mentor"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AlumniDirectoryEntry is a profile joined with its owner's public account fields
type AlumniDirectoryEntry struct {
	AlumniProfile
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AlumniFilter narrows the alumni directory listing. Empty fields do not filter.
type AlumniFilter struct {
	Batch    string
	Company  string
	Location string
	Skills   string
	IsMentor *bool
}
