package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskly/task-api/internal/core/domain"
	"github.com/taskly/task-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists queued task
// lifecycle events to the activity feed.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.ActivityEntry{
		TaskID:     in.TaskID,
		OwnerID:    in.OwnerID,
		Kind:       in.Kind,
		Timestamp:  in.Timestamp,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("task_id", in.TaskID).
		Str("kind", string(in.Kind)).
		Msg("activity recorded")
	return nil
}
