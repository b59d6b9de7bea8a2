package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// SettingsHandler handles account settings
type SettingsHandler struct {
	service services.SettingsServiceInterface
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Update handles POST /api/v1/update-settings
func (h *SettingsHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), user, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Settings updated.")
}
