package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound covers both a genuinely missing task and a task owned by
// another user. Collapsing the two keeps other users' task ids
// indistinguishable from nonexistent ones.
var ErrTaskNotFound = errors.New("task not found")

// ActivityKind labels an entry in a task's activity feed.
type ActivityKind string

const (
	ActivityCreated     ActivityKind = "created"
	ActivityUpdated     ActivityKind = "updated"
	ActivityReplaced    ActivityKind = "replaced"
	ActivityCompleted   ActivityKind = "completed"
	ActivityUncompleted ActivityKind = "uncompleted"
	ActivityDeleted     ActivityKind = "deleted"
)

// Task is the core aggregate. Every task has exactly one owner; all reads and
// mutations are filtered by OwnerID at the repository layer.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ActivityEntry records a single lifecycle event on a task.
type ActivityEntry struct {
	TaskID     string       `json:"task_id"`
	OwnerID    string       `json:"-"`
	Kind       ActivityKind `json:"kind"`
	Timestamp  time.Time    `json:"timestamp"`
	RecordedAt time.Time    `json:"recorded_at"`
}
