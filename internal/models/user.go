package models

import (
	"strings"
	"time"
)

// Role is a user's account type. It is fixed at registration.
type Role string

const (
	RoleMentor   Role = "mentor"
	RoleMentoree Role = "mentoree"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentoree
}

// NormalizeEmail trims and lower-cases an address before any write or lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is a row of the users table
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Expertise    *string // mentors only
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is the input for creating a user. Email must already be normalized.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Expertise    *string
}

// UserUpdate changes a user's settings. Nil pointers leave the column untouched.
type UserUpdate struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash *string
	Expertise    *string
}

// PublicProfile is what other users may see about a user.
// Email is only filled where the viewer is entitled to it.
type PublicProfile struct {
	UserID    int64  `json:"userID"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role"`
	Expertise string `json:"expertise,omitempty"`
}

// UserSearchFilter selects users for search. Limit 0 means no limit.
type UserSearchFilter struct {
	Term          string
	ExcludeUserID int64
	Limit         int
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      Role   `json:"role" binding:"required,oneof=mentor mentoree"`
	Expertise string `json:"expertise" binding:"required_if=Role mentor,max=255"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
	Role     Role   `json:"role" binding:"required,oneof=mentor mentoree"`
}

// SearchRequest is the payload for user search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" binding:"max=100"`
}

// UpdateSettingsRequest is the payload for account settings changes
type UpdateSettingsRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"omitempty,min=8,max=72"`
	Expertise string `json:"expertise" binding:"omitempty,max=255"`
}
