package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// TaskHandler handles the task list
type TaskHandler struct {
	service services.TaskServiceInterface
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(service services.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TasksResponse{Success: true, Tasks: nonNil(tasks)})
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), user, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CreateTaskResponse{Success: true, TaskID: id})
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Task deleted.")
}
