package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskly/task-api/internal/core/domain"
	"github.com/taskly/task-api/internal/core/ports"
)

const maxListLimit = 100

// ActivityQueue accepts task lifecycle events for asynchronous recording.
type ActivityQueue interface {
	Enqueue(input ports.ActivityInput)
}

// TaskService implements the task use cases. Every operation is scoped to the
// caller's identity; the ownership constraint is pushed down into the
// repository filters so a mismatched owner behaves exactly like a missing id.
type TaskService struct {
	repo     ports.TaskRepository
	activity ports.ActivityRepository
	queue    ActivityQueue
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, activity ports.ActivityRepository, queue ActivityQueue, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, activity: activity, queue: queue, log: log}
}

// Create persists a task owned by the caller. Any owner field in the payload
// was already discarded at the schema layer; the identity is authoritative.
func (s *TaskService) Create(ctx context.Context, ident domain.Identity, input ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		OwnerID:     ident.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.record(created.ID, ident.UserID, domain.ActivityCreated)
	s.log.Info().Str("task_id", created.ID).Str("user_id", ident.UserID).Msg("task created")
	return created, nil
}

// List returns the caller's tasks. Caller-supplied filters are intersected
// with the ownership constraint, never able to widen it.
func (s *TaskService) List(ctx context.Context, ident domain.Identity, input ports.ListTasksInput) ([]*domain.Task, error) {
	return s.repo.List(ctx, s.filter(ident, input))
}

// Count returns the number of the caller's tasks matching the filter.
func (s *TaskService) Count(ctx context.Context, ident domain.Identity, input ports.ListTasksInput) (int64, error) {
	return s.repo.Count(ctx, s.filter(ident, input))
}

func (s *TaskService) Get(ctx context.Context, ident domain.Identity, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, ident.UserID)
}

// Update applies a partial update and stamps UpdatedAt.
func (s *TaskService) Update(ctx context.Context, ident domain.Identity, id string, input ports.UpdateTaskInput) error {
	patch := ports.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.UpdateByID(ctx, id, ident.UserID, patch); err != nil {
		return err
	}
	s.record(id, ident.UserID, domain.ActivityUpdated)
	return nil
}

// Replace overwrites the mutable fields of a task. The owner id always stays
// the caller's: ownership is not transferable through this path.
func (s *TaskService) Replace(ctx context.Context, ident domain.Identity, id string, input ports.ReplaceTaskInput) error {
	existing, err := s.repo.FindByID(ctx, id, ident.UserID)
	if err != nil {
		return err
	}

	task := &domain.Task{
		ID:          existing.ID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		OwnerID:     ident.UserID,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.ReplaceByID(ctx, id, ident.UserID, task); err != nil {
		return err
	}
	s.record(id, ident.UserID, domain.ActivityReplaced)
	return nil
}

func (s *TaskService) Delete(ctx context.Context, ident domain.Identity, id string) error {
	if err := s.repo.DeleteByID(ctx, id, ident.UserID); err != nil {
		return err
	}
	s.record(id, ident.UserID, domain.ActivityDeleted)
	s.log.Info().Str("task_id", id).Str("user_id", ident.UserID).Msg("task deleted")
	return nil
}

// SetCompleted toggles the completion flag without touching other fields.
func (s *TaskService) SetCompleted(ctx context.Context, ident domain.Identity, id string, completed bool) error {
	patch := ports.TaskPatch{
		Completed: &completed,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.UpdateByID(ctx, id, ident.UserID, patch); err != nil {
		return err
	}
	kind := domain.ActivityCompleted
	if !completed {
		kind = domain.ActivityUncompleted
	}
	s.record(id, ident.UserID, kind)
	return nil
}

// Activity returns the task's activity feed after the usual ownership check.
func (s *TaskService) Activity(ctx context.Context, ident domain.Identity, id string) ([]domain.ActivityEntry, error) {
	if _, err := s.repo.FindByID(ctx, id, ident.UserID); err != nil {
		return nil, err
	}
	return s.activity.ListByTask(ctx, id)
}

func (s *TaskService) filter(ident domain.Identity, input ports.ListTasksInput) ports.ListTasksFilter {
	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	return ports.ListTasksFilter{
		OwnerID:   ident.UserID,
		Completed: input.Completed,
		Search:    input.Search,
		Limit:     limit,
		Offset:    offset,
	}
}

// record enqueues a lifecycle event; recording is best-effort and never fails
// the originating request.
func (s *TaskService) record(taskID, ownerID string, kind domain.ActivityKind) {
	s.queue.Enqueue(ports.ActivityInput{
		TaskID:    taskID,
		OwnerID:   ownerID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	})
}
