package ports

import (
	"context"
	"time"

	"github.com/taskly/task-api/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing and counting
// tasks. OwnerID is always set by the service layer; callers cannot widen it.
type ListTasksFilter struct {
	OwnerID   string
	Completed *bool  // optional: filter by completion state
	Search    string // optional: case-insensitive partial match on title
	Limit     int    // max rows returned (capped by the service)
	Offset    int
}

// TaskPatch is a partial update applied with load-scoped semantics: only
// non-nil fields change, and the write is filtered by owner id.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	UpdatedAt   time.Time
}

// TaskRepository defines persistence for task records. Every id-based
// operation takes the owner id and must treat an ownership mismatch exactly
// like a missing record (domain.ErrTaskNotFound).
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Count(ctx context.Context, filter ListTasksFilter) (int64, error)
	UpdateByID(ctx context.Context, id, ownerID string, patch TaskPatch) error
	ReplaceByID(ctx context.Context, id, ownerID string, task *domain.Task) error
	DeleteByID(ctx context.Context, id, ownerID string) error
}
