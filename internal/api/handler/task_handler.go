package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskly/task-api/internal/api/metrics"
	"github.com/taskly/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every handler first
// resolves the caller identity; the service layer scopes all persistence to
// it.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), ident, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /tasks.
func (h *TaskHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), ident, parseListInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Count handles GET /tasks/count.
func (h *TaskHandler) Count(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	count, err := h.service.Count(c.Request().Context(), ident, parseListInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: count})
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PATCH /tasks/:id.
func (h *TaskHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.validateTitle(); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), ident, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Replace handles PUT /tasks/:id.
func (h *TaskHandler) Replace(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req replaceTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Replace(c.Request().Context(), ident, c.Param("id"), ports.ReplaceTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("replace").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Complete handles PATCH /tasks/:id/complete.
func (h *TaskHandler) Complete(c echo.Context) error {
	return h.setCompleted(c, true, "complete")
}

// Uncomplete handles PATCH /tasks/:id/uncomplete.
func (h *TaskHandler) Uncomplete(c echo.Context) error {
	return h.setCompleted(c, false, "uncomplete")
}

func (h *TaskHandler) setCompleted(c echo.Context, completed bool, op string) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.SetCompleted(c.Request().Context(), ident, c.Param("id"), completed); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues(op).Inc()
	return c.NoContent(http.StatusNoContent)
}

// Activity handles GET /tasks/:id/activity.
func (h *TaskHandler) Activity(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Activity(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityResponse(entries))
}
