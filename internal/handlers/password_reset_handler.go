package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// PasswordResetHandler handles the verification-code password reset
type PasswordResetHandler struct {
	service services.PasswordResetServiceInterface
}

// NewPasswordResetHandler creates a new PasswordResetHandler
func NewPasswordResetHandler(service services.PasswordResetServiceInterface) *PasswordResetHandler {
	return &PasswordResetHandler{service: service}
}

// SendCode handles POST /api/v1/send-verification-code
func (h *PasswordResetHandler) SendCode(c *gin.Context) {
	var req models.SendVerificationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.SendCode(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Verification code sent.")
}

// VerifyCode handles POST /api/v1/verify-code
func (h *PasswordResetHandler) VerifyCode(c *gin.Context) {
	var req models.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	valid, err := h.service.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !valid {
		respondSoftFail(c, "Invalid or expired verification code.", nil)
		return
	}

	respondOK(c, "Code verified.")
}

// ResetPassword handles POST /api/v1/reset-password
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Your password has been reset. You can now log in.")
}
