package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// MessageService handles direct messages between users
type MessageService struct {
	users    repository.UserStore
	messages repository.MessageStore
}

// NewMessageService creates a new MessageService
func NewMessageService(users repository.UserStore, messages repository.MessageStore) *MessageService {
	return &MessageService{
		users:    users,
		messages: messages,
	}
}

// Send delivers a message to the user registered under req.ReceiverEmail.
// Nothing is stored when the receiver does not exist.
func (s *MessageService) Send(ctx context.Context, sender models.SessionUser, req *models.SendMessageRequest) (_ int64, err error) {
	defer func() { metrics.MessagesSent.WithLabelValues(outcome(err)).Inc() }()

	subject := strings.TrimSpace(req.Subject)
	body := strings.TrimSpace(req.Body)
	if subject == "" || body == "" {
		return 0, validationError("message", "blank subject or body", "Subject and message body are required.")
	}

	receiver, err := s.users.GetByEmail(ctx, models.NormalizeEmail(req.ReceiverEmail))
	if err != nil {
		return 0, withNotFound(err, "Receiver not found.")
	}
	if receiver.ID == sender.UserID {
		return 0, validationError("receiverEmail", "self", "You cannot send a message to yourself.")
	}

	id, err := s.messages.Create(ctx, &models.NewMessage{
		SenderID:   sender.UserID,
		ReceiverID: receiver.ID,
		Subject:    subject,
		Body:       body,
	})
	if err != nil {
		return 0, withNotFound(err, "Receiver not found.")
	}

	logger.Debug("Message sent",
		zap.Int64("message_id", id),
		zap.Int64("sender_id", sender.UserID),
		zap.Int64("receiver_id", receiver.ID))
	return id, nil
}

// ListReceived returns the user's inbox, newest first
func (s *MessageService) ListReceived(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error) {
	return s.messages.ListReceived(ctx, user.UserID)
}

// ListSent returns the messages the user sent, newest first
func (s *MessageService) ListSent(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error) {
	return s.messages.ListSent(ctx, user.UserID)
}

// Get returns a message the user sent or received
func (s *MessageService) Get(ctx context.Context, user models.SessionUser, id int64) (*models.Message, error) {
	msg, err := s.messages.GetForParticipant(ctx, id, user.UserID)
	if err != nil {
		return nil, withNotFound(err, "Message not found.")
	}
	return msg, nil
}

// MarkRead marks a received message as read. Ids that are unknown, already
// read or addressed to someone else are a silent no-op.
func (s *MessageService) MarkRead(ctx context.Context, user models.SessionUser, id int64) error {
	changed, err := s.messages.MarkRead(ctx, id, user.UserID)
	if err != nil {
		return err
	}
	if !changed {
		logger.Debug("Mark-as-read changed nothing",
			zap.Int64("message_id", id),
			zap.Int64("user_id", user.UserID))
	}
	return nil
}

// UnreadCount returns how many received messages are still unread
func (s *MessageService) UnreadCount(ctx context.Context, user models.SessionUser) (int, error) {
	return s.messages.CountUnread(ctx, user.UserID)
}
