package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// SearchHandler handles user search
type SearchHandler struct {
	service services.SearchServiceInterface
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(service services.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results, err := h.service.Search(c.Request.Context(), user, req.SearchTerm)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Success: true, Results: nonNil(results)})
}
