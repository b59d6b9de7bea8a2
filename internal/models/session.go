package models

import "time"

// SessionUser is the identity bound to a live session
type SessionUser struct {
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// IsMentor reports whether the session belongs to a mentor
func (s SessionUser) IsMentor() bool {
	return s.Role == RoleMentor
}

// Session is a server-side session record
type Session struct {
	ID        string
	User      SessionUser
	ExpiresAt time.Time
}
