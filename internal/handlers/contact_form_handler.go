package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// ContactFormHandler handles the public contact form
type ContactFormHandler struct {
	service services.ContactFormServiceInterface
}

// NewContactFormHandler creates a new ContactFormHandler
func NewContactFormHandler(service services.ContactFormServiceInterface) *ContactFormHandler {
	return &ContactFormHandler{service: service}
}

// Submit handles POST /api/v1/contact-form
func (h *ContactFormHandler) Submit(c *gin.Context) {
	var req models.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Thank you! We will get back to you soon.")
}
