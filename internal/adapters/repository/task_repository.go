package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/database"
	"github.com/taskboard/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface on
// postgres. Single-row mutations run inside a transaction with a row
// lock so concurrent writes to the same task serialize cleanly.
type TaskRepositoryImpl struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, completed, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Completed,
		task.OwnerID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entities.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2`

	var task entities.Task
	err := r.db.DB.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A task owned by someone else is reported exactly like a
			// task that does not exist.
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at, id`

	tasks := []*entities.Task{}
	err := r.db.DB.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id, ownerID string, title, description *string) (*entities.Task, error) {
	var task entities.Task

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.lockRow(ctx, tx, &task, id, ownerID); err != nil {
			return err
		}

		if title != nil {
			task.Title = *title
		}
		if description != nil {
			task.Description = description
		}
		task.UpdatedAt = time.Now().UTC()

		query := `
			UPDATE tasks
			SET title = $3, description = $4, updated_at = $5
			WHERE id = $1 AND owner_id = $2`

		_, err := tx.ExecContext(ctx, query,
			task.ID, task.OwnerID, task.Title, task.Description, task.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) SetCompleted(ctx context.Context, id, ownerID string, completed bool) (*entities.Task, error) {
	var task entities.Task

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.lockRow(ctx, tx, &task, id, ownerID); err != nil {
			return err
		}

		task.Completed = completed
		task.UpdatedAt = time.Now().UTC()

		query := `
			UPDATE tasks
			SET completed = $3, updated_at = $4
			WHERE id = $1 AND owner_id = $2`

		_, err := tx.ExecContext(ctx, query, task.ID, task.OwnerID, task.Completed, task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("set task completed: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// lockRow fetches the task under FOR UPDATE within the transaction
func (r *TaskRepositoryImpl) lockRow(ctx context.Context, tx *sqlx.Tx, task *entities.Task, id, ownerID string) error {
	query := `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE`

	err := tx.GetContext(ctx, task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrTaskNotFound
		}
		return fmt.Errorf("lock task row: %w", err)
	}

	return nil
}
