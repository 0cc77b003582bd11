package ports

import (
	"context"

	"github.com/taskly/task-api/internal/core/domain"
)

// CreateTaskInput carries the fields a caller may set when creating a task.
// The owner always comes from the authenticated identity, never the payload.
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// ReplaceTaskInput is a full replacement of the mutable task fields.
type ReplaceTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// ListTasksInput carries the caller-supplied list filters. The service
// intersects them with the ownership constraint.
type ListTasksInput struct {
	Completed *bool
	Search    string
	Limit     int
	Offset    int
}

// TaskService defines the use-case operations on tasks. Every operation is
// scoped to the given identity; an id that exists but belongs to someone else
// surfaces as domain.ErrTaskNotFound.
type TaskService interface {
	Create(ctx context.Context, ident domain.Identity, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, ident domain.Identity, input ListTasksInput) ([]*domain.Task, error)
	Count(ctx context.Context, ident domain.Identity, input ListTasksInput) (int64, error)
	Get(ctx context.Context, ident domain.Identity, id string) (*domain.Task, error)
	Update(ctx context.Context, ident domain.Identity, id string, input UpdateTaskInput) error
	Replace(ctx context.Context, ident domain.Identity, id string, input ReplaceTaskInput) error
	Delete(ctx context.Context, ident domain.Identity, id string) error
	SetCompleted(ctx context.Context, ident domain.Identity, id string, completed bool) error
	Activity(ctx context.Context, ident domain.Identity, id string) ([]domain.ActivityEntry, error)
}
