package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// TaskHandler handles task-related requests. Authentication and the
// owner gate run as group middleware before any of these methods, so
// the owner_id path parameter is already known to match the caller.
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles POST /api/:owner_id/tasks
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := c.Param("owner_id")

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/:owner_id/tasks
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := c.Param("owner_id")

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TaskListResponse{Tasks: tasks})
}

// GetTask handles GET /api/:owner_id/tasks/:id
func (h *TaskHandler) GetTask(c echo.Context) error {
	ownerID := c.Param("owner_id")
	taskID := c.Param("id")

	task, err := h.taskService.GetTask(c.Request().Context(), taskID, ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/:owner_id/tasks/:id
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := c.Param("owner_id")
	taskID := c.Param("id")

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), taskID, ownerID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// ToggleComplete handles PATCH /api/:owner_id/tasks/:id/complete
func (h *TaskHandler) ToggleComplete(c echo.Context) error {
	ownerID := c.Param("owner_id")
	taskID := c.Param("id")

	var req ports.ToggleCompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.ToggleComplete(c.Request().Context(), taskID, ownerID, *req.Completed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/:owner_id/tasks/:id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := c.Param("owner_id")
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request().Context(), taskID, ownerID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
