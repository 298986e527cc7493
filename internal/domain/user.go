package domain

import (
	"strings"
	"time"
)

const MinPasswordLength = 5

type User struct {
	ID          uint         `json:"id"`
	Email       string       `json:"email"`
	Password    string       `json:"-"`
	IsActive    bool         `json:"is_active"`
	IsStaff     bool         `json:"is_staff"`
	IsSuperuser bool         `json:"is_superuser"`
	LastLogin   *time.Time   `json:"last_login,omitempty"`
	Details     *UserDetails `json:"user_details,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// UserDetails is the profile owned by exactly one User.
type UserDetails struct {
	UserID    uint   `json:"-"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Tel       string `json:"tel"`
	Privacy   bool   `json:"privacy"`
	Marketing bool   `json:"marketing"`
}

// NormalizeEmail makes lookups case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
