package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// TaskRepository defines the interface for task data operations.
// Every method addressing a single task is scoped by both the task id
// and the owner id; a row owned by someone else behaves exactly like a
// row that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error)
	Update(ctx context.Context, id, ownerID string, title, description *string) (*entities.Task, error)
	SetCompleted(ctx context.Context, id, ownerID string, completed bool) (*entities.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
