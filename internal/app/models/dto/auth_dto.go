package dto

import (
	"time"

	"github.com/yigit/alumnet/internal/app/models"
)

// RegisterRequest represents a self-service sign-up. Admin accounts cannot be registered.
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required,notblank,min=2,max=100" example:"Jane Doe"`
	Email    string      `json:"email" binding:"required,email" example:"jane@example.edu"`
	Password string      `json:"password" binding:"required,min=6" example:"secret1"`
	Role     models.Role `json:"role" binding:"required,oneof=alumni student" example:"alumni"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAccountRequest updates the name and email of an account
type UpdateAccountRequest struct {
	Name  string `json:"name" binding:"required,notblank,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	IsApproved bool        `json:"is_approved"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NewUserResponse strips private fields from a user row
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
	}
}

// NewUserResponses converts a list of users
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// MeResponse is the caller's account, with the alumni profile for alumni
type MeResponse struct {
	User    UserResponse          `json:"user"`
	Profile *models.AlumniProfile `json:"profile,omitempty"`
}
