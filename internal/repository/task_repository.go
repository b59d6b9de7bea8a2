package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// TaskRepository handles per-user tasks
type TaskRepository struct {
	db DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByOwner returns userID's tasks ordered by start, then id
func (r *TaskRepository) ListByOwner(ctx context.Context, userID int64) (tasks []models.Task, err error) {
	ctx, done := track(ctx, "listTasks")
	defer func() { done(err) }()

	query := `
		SELECT id, user_id, title, start, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY start ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreError("listTasks", err)
	}

	tasks, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Task, error) {
		var t models.Task
		err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Start, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, apperrors.StoreError("listTasks", err)
	}
	return tasks, nil
}

// Create stores a task owned by userID and returns its id
func (r *TaskRepository) Create(ctx context.Context, userID int64, title string, start time.Time) (id int64, err error) {
	ctx, done := track(ctx, "createTask")
	defer func() { done(err) }()

	err = r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, start) VALUES ($1, $2, $3) RETURNING id`,
		userID, title, start).Scan(&id)
	if err != nil {
		return 0, apperrors.StoreError("createTask", err)
	}
	return id, nil
}

// Delete removes the task only when userID owns it. Otherwise NotFound and nothing changes.
func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) (err error) {
	ctx, done := track(ctx, "deleteTask")
	defer func() { done(err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.StoreError("deleteTask", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("task")
	}
	return nil
}
