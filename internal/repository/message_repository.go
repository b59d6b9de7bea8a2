package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// MessageRepository handles access to the communications table
type MessageRepository struct {
	db DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create stores a message with status sent and returns its id
func (r *MessageRepository) Create(ctx context.Context, msg *models.NewMessage) (id int64, err error) {
	ctx, done := track(ctx, "createMessage")
	defer func() { done(err) }()

	query := `
		INSERT INTO communications (sender_id, receiver_id, subject, body, status)
		VALUES ($1, $2, $3, $4, 'sent')
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query, msg.SenderID, msg.ReceiverID, msg.Subject, msg.Body).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, apperrors.NotFoundError("receiver")
		}
		return 0, apperrors.StoreError("createMessage", err)
	}
	return id, nil
}

func (r *MessageRepository) listInbox(ctx context.Context, operation, query string, userID int64) (msgs []models.InboxMessage, err error) {
	ctx, done := track(ctx, operation)
	defer func() { done(err) }()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreError(operation, err)
	}

	msgs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InboxMessage, error) {
		var m models.InboxMessage
		var status string
		err := row.Scan(&m.ID, &m.CounterpartID, &m.CounterpartName, &m.CounterpartEmail,
			&m.Subject, &m.Body, &m.SentAt, &status)
		m.Status = models.MessageStatus(status)
		return m, err
	})
	if err != nil {
		return nil, apperrors.StoreError(operation, err)
	}
	return msgs, nil
}

// ListReceived returns messages addressed to userID, newest first
func (r *MessageRepository) ListReceived(ctx context.Context, userID int64) ([]models.InboxMessage, error) {
	return r.listInbox(ctx, "listReceivedMessages", `
		SELECT c.id, u.id, u.name, u.email, c.subject, c.body, c.sent_at, c.status
		FROM communications c
		JOIN users u ON u.id = c.sender_id
		WHERE c.receiver_id = $1
		ORDER BY c.sent_at DESC, c.id DESC
	`, userID)
}

// ListSent returns messages sent by userID, newest first
func (r *MessageRepository) ListSent(ctx context.Context, userID int64) ([]models.InboxMessage, error) {
	return r.listInbox(ctx, "listSentMessages", `
		SELECT c.id, u.id, u.name, u.email, c.subject, c.body, c.sent_at, c.status
		FROM communications c
		JOIN users u ON u.id = c.receiver_id
		WHERE c.sender_id = $1
		ORDER BY c.sent_at DESC, c.id DESC
	`, userID)
}

// GetForParticipant returns the message only if userID sent or received it
func (r *MessageRepository) GetForParticipant(ctx context.Context, id, userID int64) (msg *models.Message, err error) {
	ctx, done := track(ctx, "getMessage")
	defer func() { done(err) }()

	query := `
		SELECT id, sender_id, receiver_id, subject, body, sent_at, status
		FROM communications
		WHERE id = $1 AND (sender_id = $2 OR receiver_id = $2)
	`

	var m models.Message
	var status string
	err = r.db.QueryRow(ctx, query, id, userID).Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Body, &m.SentAt, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("message")
		}
		return nil, apperrors.StoreError("getMessage", err)
	}
	m.Status = models.MessageStatus(status)
	return &m, nil
}

// MarkRead flips a sent message to read when receiverID is its receiver.
// Reports whether a row changed; repeats and foreign ids change nothing.
func (r *MessageRepository) MarkRead(ctx context.Context, id, receiverID int64) (changed bool, err error) {
	ctx, done := track(ctx, "markMessageRead")
	defer func() { done(err) }()

	query := `
		UPDATE communications
		SET status = 'read'
		WHERE id = $1 AND receiver_id = $2 AND status = 'sent'
	`

	tag, err := r.db.Exec(ctx, query, id, receiverID)
	if err != nil {
		return false, apperrors.StoreError("markMessageRead", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountUnread counts messages to userID still in status sent
func (r *MessageRepository) CountUnread(ctx context.Context, userID int64) (count int, err error) {
	ctx, done := track(ctx, "countUnreadMessages")
	defer func() { done(err) }()

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM communications WHERE receiver_id = $1 AND status = 'sent'`,
		userID).Scan(&count)
	if err != nil {
		return 0, apperrors.StoreError("countUnreadMessages", err)
	}
	return count, nil
}
