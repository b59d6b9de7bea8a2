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

// TaskService manages each user's own task list
type TaskService struct {
	tasks repository.TaskStore
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks repository.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the user's tasks ordered by start time
func (s *TaskService) List(ctx context.Context, user models.SessionUser) ([]models.Task, error) {
	return s.tasks.ListByOwner(ctx, user.UserID)
}

// Create adds a task owned by user and returns its id
func (s *TaskService) Create(ctx context.Context, user models.SessionUser, req *models.CreateTaskRequest) (_ int64, err error) {
	defer func() { metrics.TaskOperations.WithLabelValues("create", outcome(err)).Inc() }()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return 0, validationError("title", "blank", "Task title is required.")
	}
	if req.Start.IsZero() {
		return 0, validationError("start", "missing", "Task start time is required.")
	}

	id, err := s.tasks.Create(ctx, user.UserID, title, req.Start.UTC())
	if err != nil {
		return 0, err
	}

	logger.Debug("Task created", zap.Int64("task_id", id), zap.Int64("user_id", user.UserID))
	return id, nil
}

// Delete removes a task. Tasks of other users are reported as not found and left untouched.
func (s *TaskService) Delete(ctx context.Context, user models.SessionUser, id int64) (err error) {
	defer func() { metrics.TaskOperations.WithLabelValues("delete", outcome(err)).Inc() }()

	err = s.tasks.Delete(ctx, id, user.UserID)
	if err != nil {
		return withNotFound(err, "Task not found.")
	}
	return nil
}
