package dto

import (
	"time"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Auth / User DTOs ---

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest registers a user account.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsSuperAdmin bool      `json:"isSuperAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		IsSuperAdmin: u.IsSuperAdmin,
		CreatedAt:    u.CreatedAt,
	}
}
