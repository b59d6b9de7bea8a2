package models

import "time"

// Task is a calendar entry owned by one user
type Task struct {
	ID        int64     `json:"taskID"`
	UserID    int64     `json:"userID"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTaskRequest is the payload for creating a task. Start is RFC 3339.
type CreateTaskRequest struct {
	Title string    `json:"title" binding:"required,max=255"`
	Start time.Time `json:"start" binding:"required"`
}
