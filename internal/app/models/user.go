package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Name       string    `json:"name" db:"name" example:"Jane Doe"`
	Email      string    `json:"email" db:"email" example:"jane@example.edu"`
	Password   string    `json:"-" db:"password"` // bcrypt hash
	Role       Role      `json:"role" db:"role" example:"alumni"`
	IsApproved bool      `json:"is_approved" db:"is_approved" example:"false"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats aggregates account counts for the admin dashboard
type UserStats struct {
	Total    int64 `json:"total"`
	Alumni   int64 `json:"alumni"`
	Students int64 `json:"students"`
	Pending  int64 `json:"pending"`
}
