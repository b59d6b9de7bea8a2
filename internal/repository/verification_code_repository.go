package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// VerificationCodeRepository keeps password reset codes on the users row,
// one live code per email
type VerificationCodeRepository struct {
	db DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

// Put stores code for email, replacing any earlier one
func (r *VerificationCodeRepository) Put(ctx context.Context, email, code string, expiresAt time.Time) (err error) {
	ctx, done := track(ctx, "putVerificationCode")
	defer func() { done(err) }()

	query := `
		UPDATE users
		SET verification_code = $2, verification_expires_at = $3
		WHERE LOWER(email) = $1
	`

	tag, err := r.db.Exec(ctx, query, models.NormalizeEmail(email), code, expiresAt)
	if err != nil {
		return apperrors.StoreError("putVerificationCode", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("email")
	}
	return nil
}

// Get returns the code stored for email. No user or no code is NotFound.
func (r *VerificationCodeRepository) Get(ctx context.Context, email string) (vc *models.VerificationCode, err error) {
	ctx, done := track(ctx, "getVerificationCode")
	defer func() { done(err) }()

	query := `
		SELECT verification_code, verification_expires_at
		FROM users
		WHERE LOWER(email) = $1
	`

	var code *string
	var expiresAt *time.Time
	err = r.db.QueryRow(ctx, query, models.NormalizeEmail(email)).Scan(&code, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("verification code")
		}
		return nil, apperrors.StoreError("getVerificationCode", err)
	}
	if code == nil || expiresAt == nil {
		return nil, apperrors.NotFoundError("verification code")
	}

	return &models.VerificationCode{Code: *code, ExpiresAt: *expiresAt}, nil
}

// ConsumeAndSetPassword sets passwordHash and clears the code in one statement,
// only if code is the live code for email. Reports whether a row changed.
func (r *VerificationCodeRepository) ConsumeAndSetPassword(ctx context.Context, email, code, passwordHash string) (ok bool, err error) {
	ctx, done := track(ctx, "consumeVerificationCode")
	defer func() { done(err) }()

	query := `
		UPDATE users
		SET password_hash = $3,
		    verification_code = NULL,
		    verification_expires_at = NULL,
		    updated_at = NOW()
		WHERE LOWER(email) = $1
		  AND verification_code = $2
		  AND verification_expires_at > NOW()
	`

	tag, err := r.db.Exec(ctx, query, models.NormalizeEmail(email), code, passwordHash)
	if err != nil {
		return false, apperrors.StoreError("consumeVerificationCode", err)
	}
	return tag.RowsAffected() == 1, nil
}
