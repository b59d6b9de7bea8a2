package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func TestTaskService_Create(t *testing.T) {
	tasks := new(MockTaskStore)
	service := services.NewTaskService(tasks)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("CET", 3600))

	tasks.On("Create", ctx, menteeUser.UserID, "Read chapter 3", start.UTC()).Return(int64(8), nil).Once()

	id, err := service.Create(ctx, menteeUser, &models.CreateTaskRequest{Title: " Read chapter 3 ", Start: start})

	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	tasks.AssertExpectations(t)
}

func TestTaskService_Create_Invalid(t *testing.T) {
	tasks := new(MockTaskStore)
	service := services.NewTaskService(tasks)
	ctx := context.Background()

	_, err := service.Create(ctx, menteeUser, &models.CreateTaskRequest{Title: "  ", Start: time.Now()})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	_, err = service.Create(ctx, menteeUser, &models.CreateTaskRequest{Title: "x"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_Delete_OtherOwner(t *testing.T) {
	tasks := new(MockTaskStore)
	service := services.NewTaskService(tasks)
	ctx := context.Background()

	// the delete is scoped to the acting owner, so another user's task is simply not found
	tasks.On("Delete", ctx, int64(8), otherUser.UserID).Return(apperrors.NotFoundError("task")).Once()
	tasks.On("Delete", ctx, int64(8), menteeUser.UserID).Return(nil).Once()

	err := service.Delete(ctx, otherUser, 8)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	msg, _ := apperrors.PublicMessage(err)
	assert.Equal(t, "Task not found.", msg)

	assert.NoError(t, service.Delete(ctx, menteeUser, 8))
	tasks.AssertExpectations(t)
}

func TestTaskService_List(t *testing.T) {
	tasks := new(MockTaskStore)
	service := services.NewTaskService(tasks)
	ctx := context.Background()

	list := []models.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	tasks.On("ListByOwner", ctx, menteeUser.UserID).Return(list, nil)

	got, err := service.List(ctx, menteeUser)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}
