package auth

import (
	"time"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

// LastLoginCookie carries the previous login time for the front end.
const LastLoginCookie = "last_login"

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150" example:"gunner14"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"gunner14"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required,min=8,max=72"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required,eqfield=NewPassword"`
}

type LoginResponse struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token"`
}

type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	IsAdmin   bool       `json:"is_admin"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
