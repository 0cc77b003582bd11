package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskly/task-api/internal/core/domain"
	"github.com/taskly/task-api/internal/core/ports"
)

// Request types deliberately have no owner field: the owner always comes from
// the authenticated identity, so a client-supplied userId cannot even bind.

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// updateTaskRequest is a partial update; nil fields are left untouched. The
// title constraint cannot live in a validate tag: a present pointer to ""
// dereferences to the zero value and omitempty short-circuits the check.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (r *updateTaskRequest) validateTitle() error {
	if r.Title != nil && *r.Title == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "title must not be empty")
	}
	return nil
}

type replaceTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type activityEntryResponse struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

func toActivityResponse(entries []domain.ActivityEntry) []activityEntryResponse {
	out := make([]activityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityEntryResponse{
			Kind:      string(e.Kind),
			Timestamp: e.Timestamp,
		})
	}
	return out
}

// parseListInput reads the optional list filters from the query string.
// Unparseable values are ignored rather than rejected.
func parseListInput(c echo.Context) ports.ListTasksInput {
	var input ports.ListTasksInput

	if raw := c.QueryParam("completed"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			input.Completed = &v
		}
	}
	input.Search = c.QueryParam("search")
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Offset = v
		}
	}
	return input
}
