package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// FriendHandler handles contacts and friend requests
type FriendHandler struct {
	service services.FriendServiceInterface
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(service services.FriendServiceInterface) *FriendHandler {
	return &FriendHandler{service: service}
}

// Contacts handles GET /api/v1/contacts
func (h *FriendHandler) Contacts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	contacts, err := h.service.ListContacts(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ContactsResponse{Success: true, Contacts: nonNil(contacts)})
}

// AddFriend handles POST /api/v1/add-friend
func (h *FriendHandler) AddFriend(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.AddFriend(c.Request.Context(), user, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Friend request sent.")
}

// FriendRequests handles GET /api/v1/friend-requests
func (h *FriendHandler) FriendRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.service.ListFriendRequests(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FriendRequestsResponse{Success: true, FriendRequests: nonNil(requests)})
}

// Respond handles POST /api/v1/respond-friend-request/:id
func (h *FriendHandler) Respond(c *gin.Context) {
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

	respondOK(c, "Friend request "+string(req.Status)+".")
}
