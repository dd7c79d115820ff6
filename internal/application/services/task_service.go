package services

import (
	"context"
	"fmt"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// TaskService handles task lifecycle operations for a single owner
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask validates the input and persists a new task for the owner
func (s *TaskService) CreateTask(ctx context.Context, ownerID string, req ports.CreateTaskRequest) (*entities.Task, error) {
	if err := entities.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}
	if err := entities.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := entities.ValidateDescription(req.Description); err != nil {
		return nil, err
	}

	task := entities.NewTask(ownerID, req.Title, req.Description)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// GetTask retrieves a single task scoped by id and owner
func (s *TaskService) GetTask(ctx context.Context, id, ownerID string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks retrieves all tasks belonging to the owner
func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces the provided fields of an existing task. The id,
// owner and creation timestamp never change; the completed flag is
// left untouched.
func (s *TaskService) UpdateTask(ctx context.Context, id, ownerID string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if req.Title != nil {
		if err := entities.ValidateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if err := entities.ValidateDescription(req.Description); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Update(ctx, id, ownerID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// ToggleComplete sets the completion flag of a task
func (s *TaskService) ToggleComplete(ctx context.Context, id, ownerID string, completed bool) (*entities.Task, error) {
	task, err := s.taskRepo.SetCompleted(ctx, id, ownerID, completed)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Task completion toggled", "task_id", id, "owner_id", ownerID, "completed", completed)

	return task, nil
}

// DeleteTask permanently removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id, ownerID string) error {
	if err := s.taskRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Infow("Task deleted", "task_id", id, "owner_id", ownerID)

	return nil
}
