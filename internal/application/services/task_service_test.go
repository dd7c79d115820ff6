package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// fakeTaskRepo is an in-memory TaskRepository used to test the service
// without a database. It applies the same owner scoping rules as the
// postgres implementation.
type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entities.Task
	order []string
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entities.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *task
	r.tasks[task.ID] = &clone
	r.order = append(r.order, task.ID)
	return nil
}

func (r *fakeTaskRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Task{}
	for _, id := range r.order {
		if task, ok := r.tasks[id]; ok && task.OwnerID == ownerID {
			clone := *task
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, id, ownerID string, title, description *string) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = description
	}
	task.UpdatedAt = time.Now().UTC()
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) SetCompleted(ctx context.Context, id, ownerID string, completed bool) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	task.Completed = completed
	task.UpdatedAt = time.Now().UTC()
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestTaskService() (*TaskService, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	return NewTaskService(repo, logger.NewNop()), repo
}

func TestCreateTask(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{
		Title:       "Buy milk",
		Description: strPtr("2 liters"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 liters", *task.Description)
	assert.Equal(t, "u1", task.OwnerID)
	assert.False(t, task.Completed)
	assert.True(t, task.CreatedAt.Equal(task.UpdatedAt))

	got, err := svc.GetTask(ctx, task.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	tests := []struct {
		name    string
		ownerID string
		req     ports.CreateTaskRequest
		wantErr error
	}{
		{
			name:    "empty title",
			ownerID: "u1",
			req:     ports.CreateTaskRequest{Title: ""},
			wantErr: entities.ErrInvalidTitle,
		},
		{
			name:    "title too long",
			ownerID: "u1",
			req:     ports.CreateTaskRequest{Title: strings.Repeat("x", 256)},
			wantErr: entities.ErrInvalidTitle,
		},
		{
			name:    "description too long",
			ownerID: "u1",
			req:     ports.CreateTaskRequest{Title: "ok", Description: strPtr(strings.Repeat("x", 1001))},
			wantErr: entities.ErrInvalidDescription,
		},
		{
			name:    "empty owner",
			ownerID: "",
			req:     ports.CreateTaskRequest{Title: "ok"},
			wantErr: entities.ErrInvalidOwnerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, tt.ownerID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTaskBoundaryLengths(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{
		Title:       strings.Repeat("t", 255),
		Description: strPtr(strings.Repeat("d", 1000)),
	})
	require.NoError(t, err)
	assert.Len(t, task.Title, 255)
}

func TestGetTaskOwnerIsolation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: "private"})
	require.NoError(t, err)

	// Another owner asking for an existing id gets the same error as
	// asking for a nonexistent id.
	_, err = svc.GetTask(ctx, task.ID, "u2")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = svc.GetTask(ctx, "no-such-id", "u1")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestListTasks(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: title})
		require.NoError(t, err)
	}
	_, err := svc.CreateTask(ctx, "u2", ports.CreateTaskRequest{Title: "other owner"})
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)

	empty, err := svc.ListTasks(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateTask(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{
		Title:       "original",
		Description: strPtr("original description"),
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := svc.UpdateTask(ctx, created.ID, "u1", ports.UpdateTaskRequest{
		Title: strPtr("renamed"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "renamed", updated.Title)
	// omitted field is left alone
	assert.Equal(t, "original description", *updated.Description)
	assert.False(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateTaskValidation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: "task"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, created.ID, "u1", ports.UpdateTaskRequest{Title: strPtr("")})
	assert.ErrorIs(t, err, entities.ErrInvalidTitle)

	_, err = svc.UpdateTask(ctx, created.ID, "u1", ports.UpdateTaskRequest{
		Description: strPtr(strings.Repeat("x", 1001)),
	})
	assert.ErrorIs(t, err, entities.ErrInvalidDescription)
}

func TestUpdateTaskOwnerIsolation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: "task"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, created.ID, "u2", ports.UpdateTaskRequest{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	unchanged, err := svc.GetTask(ctx, created.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "task", unchanged.Title)
}

func TestToggleCompleteRoundTrip(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: "task"})
	require.NoError(t, err)
	require.False(t, created.Completed)

	time.Sleep(10 * time.Millisecond)

	done, err := svc.ToggleComplete(ctx, created.ID, "u1", true)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.True(t, done.UpdatedAt.After(created.UpdatedAt))

	time.Sleep(10 * time.Millisecond)

	undone, err := svc.ToggleComplete(ctx, created.ID, "u1", false)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.True(t, undone.UpdatedAt.After(done.UpdatedAt))

	_, err = svc.ToggleComplete(ctx, created.ID, "u2", true)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "u1", ports.CreateTaskRequest{Title: "task"})
	require.NoError(t, err)

	// wrong owner cannot delete
	err = svc.DeleteTask(ctx, created.ID, "u2")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(ctx, created.ID, "u1"))

	// the second delete reports not found, not success
	err = svc.DeleteTask(ctx, created.ID, "u1")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = svc.GetTask(ctx, created.ID, "u1")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}
