package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// ContactRepository handles friend edges
type ContactRepository struct {
	db DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create adds a pending edge from requesterID to inviteeID. Any existing edge
// between the two, in either direction and any state, is a conflict.
func (r *ContactRepository) Create(ctx context.Context, requesterID, inviteeID int64) (id int64, err error) {
	ctx, done := track(ctx, "createContact")
	defer func() { done(err) }()

	query := `
		INSERT INTO contacts (user_id1, user_id2, status)
		VALUES ($1, $2, 'pending')
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query, requesterID, inviteeID).Scan(&id)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return 0, apperrors.ConflictError("contact already exists")
		case pgForeignKeyViolation:
			return 0, apperrors.NotFoundError("user")
		}
		return 0, apperrors.StoreError("createContact", err)
	}
	return id, nil
}

// GetByID fetches an edge by id
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (contact *models.Contact, err error) {
	ctx, done := track(ctx, "getContact")
	defer func() { done(err) }()

	query := `
		SELECT id, user_id1, user_id2, status, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`

	var c models.Contact
	var status string
	err = r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID1, &c.UserID2, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("contact")
		}
		return nil, apperrors.StoreError("getContact", err)
	}
	c.Status = models.RequestStatus(status)
	return &c, nil
}

// Respond moves a pending edge to status, only for its invitee.
// Reports whether a row changed.
func (r *ContactRepository) Respond(ctx context.Context, id, inviteeID int64, status models.RequestStatus) (changed bool, err error) {
	ctx, done := track(ctx, "respondContact")
	defer func() { done(err) }()

	query := `
		UPDATE contacts
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id2 = $2 AND status = 'pending'
	`

	tag, err := r.db.Exec(ctx, query, id, inviteeID, string(status))
	if err != nil {
		return false, apperrors.StoreError("respondContact", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListAccepted returns the profiles of userID's accepted contacts
func (r *ContactRepository) ListAccepted(ctx context.Context, userID int64) (profiles []models.PublicProfile, err error) {
	ctx, done := track(ctx, "listContacts")
	defer func() { done(err) }()

	query := `
		SELECT u.id, u.name, u.email, u.role, COALESCE(u.expertise, '')
		FROM contacts c
		JOIN users u ON u.id = CASE WHEN c.user_id1 = $1 THEN c.user_id2 ELSE c.user_id1 END
		WHERE c.status = 'accepted'
		  AND (c.user_id1 = $1 OR c.user_id2 = $1)
		ORDER BY u.name ASC, u.id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreError("listContacts", err)
	}

	profiles, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PublicProfile, error) {
		var p models.PublicProfile
		var role string
		err := row.Scan(&p.UserID, &p.Name, &p.Email, &role, &p.Expertise)
		p.Role = models.Role(role)
		return p, err
	})
	if err != nil {
		return nil, apperrors.StoreError("listContacts", err)
	}
	return profiles, nil
}

// ListPending returns pending edges touching userID, newest first
func (r *ContactRepository) ListPending(ctx context.Context, userID int64) (requests []models.FriendRequest, err error) {
	ctx, done := track(ctx, "listFriendRequests")
	defer func() { done(err) }()

	query := `
		SELECT c.id, u.id, u.name,
		       CASE WHEN c.user_id2 = $1 THEN 'incoming' ELSE 'outgoing' END,
		       c.created_at
		FROM contacts c
		JOIN users u ON u.id = CASE WHEN c.user_id1 = $1 THEN c.user_id2 ELSE c.user_id1 END
		WHERE c.status = 'pending'
		  AND (c.user_id1 = $1 OR c.user_id2 = $1)
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreError("listFriendRequests", err)
	}

	requests, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FriendRequest, error) {
		var fr models.FriendRequest
		err := row.Scan(&fr.ContactID, &fr.CounterpartID, &fr.CounterpartName, &fr.Direction, &fr.CreatedAt)
		return fr, err
	})
	if err != nil {
		return nil, apperrors.StoreError("listFriendRequests", err)
	}
	return requests, nil
}
