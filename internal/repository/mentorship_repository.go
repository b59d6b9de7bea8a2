package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// MentorshipRepository handles mentorship requests
type MentorshipRepository struct {
	db DB
}

// NewMentorshipRepository creates a new mentorship request repository
func NewMentorshipRepository(db DB) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create adds a pending request. A second pending request for the same pair is a conflict.
func (r *MentorshipRepository) Create(ctx context.Context, mentorID, mentoreeID int64) (id int64, err error) {
	ctx, done := track(ctx, "createMentorshipRequest")
	defer func() { done(err) }()

	query := `
		INSERT INTO mentorship_requests (mentor_id, mentoree_id, status)
		VALUES ($1, $2, 'pending')
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query, mentorID, mentoreeID).Scan(&id)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return 0, apperrors.ConflictError("mentorship request already pending")
		case pgForeignKeyViolation:
			return 0, apperrors.NotFoundError("user")
		}
		return 0, apperrors.StoreError("createMentorshipRequest", err)
	}
	return id, nil
}

// GetByID fetches a request by id
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (req *models.MentorshipRequest, err error) {
	ctx, done := track(ctx, "getMentorshipRequest")
	defer func() { done(err) }()

	query := `
		SELECT id, mentor_id, mentoree_id, status, created_at, updated_at
		FROM mentorship_requests
		WHERE id = $1
	`

	var m models.MentorshipRequest
	var status string
	err = r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.MentorID, &m.MentoreeID, &status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("mentorship request")
		}
		return nil, apperrors.StoreError("getMentorshipRequest", err)
	}
	m.Status = models.RequestStatus(status)
	return &m, nil
}

// Respond moves a pending request to status, only for its mentor.
// Reports whether a row changed.
func (r *MentorshipRepository) Respond(ctx context.Context, id, mentorID int64, status models.RequestStatus) (changed bool, err error) {
	ctx, done := track(ctx, "respondMentorshipRequest")
	defer func() { done(err) }()

	query := `
		UPDATE mentorship_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND mentor_id = $2 AND status = 'pending'
	`

	tag, err := r.db.Exec(ctx, query, id, mentorID, string(status))
	if err != nil {
		return false, apperrors.StoreError("respondMentorshipRequest", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListPending returns pending requests for userID, seen from role's side, newest first
func (r *MentorshipRepository) ListPending(ctx context.Context, userID int64, role models.Role) (views []models.MentorshipRequestView, err error) {
	ctx, done := track(ctx, "listMentorshipRequests")
	defer func() { done(err) }()

	// mentors see mentorees and vice versa
	ownColumn, otherColumn := "mentoree_id", "mentor_id"
	if role == models.RoleMentor {
		ownColumn, otherColumn = "mentor_id", "mentoree_id"
	}

	query := `
		SELECT r.id, u.id, u.name, u.role, r.status, r.created_at
		FROM mentorship_requests r
		JOIN users u ON u.id = r.` + otherColumn + `
		WHERE r.` + ownColumn + ` = $1 AND r.status = 'pending'
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreError("listMentorshipRequests", err)
	}

	views, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MentorshipRequestView, error) {
		var v models.MentorshipRequestView
		var role, status string
		err := row.Scan(&v.RequestID, &v.CounterpartID, &v.CounterpartName, &role, &status, &v.CreatedAt)
		v.CounterpartRole = models.Role(role)
		v.Status = models.RequestStatus(status)
		return v, err
	})
	if err != nil {
		return nil, apperrors.StoreError("listMentorshipRequests", err)
	}
	return views, nil
}
