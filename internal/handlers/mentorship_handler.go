package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// MentorshipHandler handles mentorship requests
type MentorshipHandler struct {
	service services.MentorshipServiceInterface
}

// NewMentorshipHandler creates a new MentorshipHandler
func NewMentorshipHandler(service services.MentorshipServiceInterface) *MentorshipHandler {
	return &MentorshipHandler{service: service}
}

// Request handles POST /api/v1/request-mentorship
func (h *MentorshipHandler) Request(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.RequestMentorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.Request(c.Request.Context(), user, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Mentorship request sent.")
}

// List handles GET /api/v1/requests
func (h *MentorshipHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.service.ListPending(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MentorshipRequestsResponse{Success: true, Requests: nonNil(requests)})
}

// Respond handles POST /api/v1/respond-request/:id
func (h *MentorshipHandler) Respond(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.Respond(c.Request.Context(), user, id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Request "+string(req.Status)+".")
}
