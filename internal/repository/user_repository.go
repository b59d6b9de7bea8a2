package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

const userColumns = `id, name, email, password_hash, role, expertise, created_at, updated_at`

// UserRepository handles user data access
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Expertise, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}

// Create inserts a user and returns its id. A case-insensitive email clash is a conflict.
func (r *UserRepository) Create(ctx context.Context, user *models.NewUser) (id int64, err error) {
	ctx, done := track(ctx, "createUser")
	defer func() { done(err) }()

	query := `
		INSERT INTO users (name, email, password_hash, role, expertise)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		user.Name,
		models.NormalizeEmail(user.Email),
		user.PasswordHash,
		string(user.Role),
		user.Expertise,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return 0, apperrors.ConflictError("email already registered")
		}
		return 0, apperrors.StoreError("createUser", err)
	}

	return id, nil
}

func (r *UserRepository) getOne(ctx context.Context, operation, where string, args ...any) (user *models.User, err error) {
	ctx, done := track(ctx, operation)
	defer func() { done(err) }()

	user, err = scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("user")
		}
		return nil, apperrors.StoreError(operation, err)
	}
	return user, nil
}

// GetByID fetches a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "getUserByID", `id = $1`, id)
}

// GetByEmail fetches a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "getUserByEmail", `LOWER(email) = $1`, models.NormalizeEmail(email))
}

// GetByEmailAndRole fetches the account matching both email and role
func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	return r.getOne(ctx, "getUserByEmailAndRole", `LOWER(email) = $1 AND role = $2`, models.NormalizeEmail(email), string(role))
}

// Update writes name and email, and password hash or expertise when set
func (r *UserRepository) Update(ctx context.Context, update *models.UserUpdate) (err error) {
	ctx, done := track(ctx, "updateUser")
	defer func() { done(err) }()

	query := `
		UPDATE users
		SET name = $2,
		    email = $3,
		    password_hash = COALESCE($4, password_hash),
		    expertise = COALESCE($5, expertise),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		update.ID,
		update.Name,
		models.NormalizeEmail(update.Email),
		update.PasswordHash,
		update.Expertise,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ConflictError("email already registered")
		}
		return apperrors.StoreError("updateUser", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("user")
	}
	return nil
}

// Search matches filter.Term against name or expertise, case-insensitively.
// Only public fields are returned; email is never part of a search result.
func (r *UserRepository) Search(ctx context.Context, filter models.UserSearchFilter) (results []models.PublicProfile, err error) {
	ctx, done := track(ctx, "searchUsers")
	defer func() { done(err) }()

	query := `
		SELECT id, name, role, COALESCE(expertise, '')
		FROM users
		WHERE id <> $1
		  AND (name ILIKE $2 ESCAPE '\' OR expertise ILIKE $2 ESCAPE '\')
		ORDER BY name ASC, id ASC
		LIMIT $3
	`

	pattern := "%" + escapeLike(filter.Term) + "%"
	rows, err := r.db.Query(ctx, query, filter.ExcludeUserID, pattern, limitArg(filter.Limit))
	if err != nil {
		return nil, apperrors.StoreError("searchUsers", err)
	}

	results, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PublicProfile, error) {
		var p models.PublicProfile
		var role string
		err := row.Scan(&p.UserID, &p.Name, &role, &p.Expertise)
		p.Role = models.Role(role)
		return p, err
	})
	if err != nil {
		return nil, apperrors.StoreError("searchUsers", err)
	}
	return results, nil
}
