package response

import (
	"time"

	"github.com/seelv/dancebook/internal/domain"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
	}
}

type UserDetailsResponse struct {
	ID          uint                `json:"id"`
	Email       string              `json:"email"`
	IsStaff     bool                `json:"is_staff"`
	LastLogin   *time.Time          `json:"last_login"`
	UserDetails *domain.UserDetails `json:"user_details"`
}

func NewUserDetailsResponse(u domain.User) UserDetailsResponse {
	return UserDetailsResponse{
		ID:          u.ID,
		Email:       u.Email,
		IsStaff:     u.IsStaff,
		LastLogin:   u.LastLogin,
		UserDetails: u.Details,
	}
}
