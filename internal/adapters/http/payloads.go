package http

import "github.com/taskboard/core/internal/domain/entities"

// TaskListResponse wraps the owner's tasks
type TaskListResponse struct {
	Tasks []*entities.Task `json:"tasks"`
}

// MessageResponse is a generic message payload
type MessageResponse struct {
	Message string `json:"message"`
}
