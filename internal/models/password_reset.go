package models

import "time"

// SendVerificationCodeRequest starts a password reset
type SendVerificationCodeRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// VerifyCodeRequest checks a reset code without consuming it
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Code  string `json:"code" binding:"required,numeric,min=4,max=10"`
}

// ResetPasswordRequest consumes a reset code and sets a new password
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Code        string `json:"code" binding:"required,numeric,min=4,max=10"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// VerificationCode is a stored password reset code
type VerificationCode struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the code is no longer usable at now
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
