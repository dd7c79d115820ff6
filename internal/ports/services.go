package ports

import (
	"context"
	"time"

	"github.com/taskboard/core/internal/domain/entities"
)

// AuthService interface for token issuance, verification and the
// owner-match authorization rule
type AuthService interface {
	IssueToken(subjectID, email string, ttl time.Duration) (string, error)
	Authenticate(token string) (*entities.Identity, error)
	Authorize(routeOwnerID string, identity *entities.Identity) error
}

// TaskService interface for task management operations
type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, id, ownerID string) (*entities.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]*entities.Task, error)
	UpdateTask(ctx context.Context, id, ownerID string, req UpdateTaskRequest) (*entities.Task, error)
	ToggleComplete(ctx context.Context, id, ownerID string, completed bool) (*entities.Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}

// Task related request types

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type ToggleCompleteRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
