package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// MessageHandler handles messaging endpoints
type MessageHandler struct {
	service services.MessageServiceInterface
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service services.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /api/v1/send-message
func (h *MessageHandler) Send(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.service.Send(c.Request.Context(), user, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Message sent.")
}

// Received handles GET /api/v1/inbox/received
func (h *MessageHandler) Received(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.service.ListReceived(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessagesResponse{Success: true, Messages: nonNil(messages)})
}

// Sent handles GET /api/v1/inbox/sent
func (h *MessageHandler) Sent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.service.ListSent(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessagesResponse{Success: true, Messages: nonNil(messages)})
}

// UnreadCount handles GET /api/v1/inbox/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UnreadCountResponse{Success: true, Count: count})
}

// Get handles GET /api/v1/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	msg, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Data: msg})
}

// MarkRead handles POST /api/v1/mark-as-read/:id
func (h *MessageHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Message marked as read.")
}

// nonNil keeps empty lists serialized as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
