package ports

import (
	"context"
	"time"

	"github.com/taskly/task-api/internal/core/domain"
)

// ActivityInput is a single task lifecycle event queued for recording.
type ActivityInput struct {
	TaskID    string
	OwnerID   string
	Kind      domain.ActivityKind
	Timestamp time.Time
}

// ActivityService persists queued activity events. Called by the dispatcher
// workers, never directly from a request path.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
}

// ActivityRepository defines persistence for the task activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	ListByTask(ctx context.Context, taskID string) ([]domain.ActivityEntry, error)
}
