package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskly/task-api/internal/core/domain"
	"github.com/taskly/task-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ActivityInput
}

func (s *recordingService) Process(_ context.Context, in ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	return nil
}

func (s *recordingService) recorded() []ports.ActivityInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityInput(nil), s.events...)
}

func TestDispatcher_PreservesPerTaskOrder(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start()

	d.Enqueue(ports.ActivityInput{TaskID: "task-1", Kind: domain.ActivityCreated})
	d.Enqueue(ports.ActivityInput{TaskID: "task-1", Kind: domain.ActivityCompleted})
	d.Enqueue(ports.ActivityInput{TaskID: "task-1", Kind: domain.ActivityDeleted})

	d.Stop()

	got := svc.recorded()
	want := []domain.ActivityKind{domain.ActivityCreated, domain.ActivityCompleted, domain.ActivityDeleted}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i, kind := range want {
		if got[i].Kind != kind {
			t.Fatalf("event %d: expected %s, got %s", i, kind, got[i].Kind)
		}
	}
}

func TestDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	// Enqueue before any worker runs: everything sits in the buffers, the
	// way late-request events do when shutdown begins.
	for _, id := range []string{"task-1", "task-2", "task-3", "task-4", "task-5"} {
		d.Enqueue(ports.ActivityInput{TaskID: id, Kind: domain.ActivityCreated})
	}

	d.Start()
	d.Stop()

	if got := len(svc.recorded()); got != 5 {
		t.Fatalf("expected all 5 buffered events drained, got %d", got)
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(2, &recordingService{}, zerolog.Nop())
	d.Start()
	d.Stop()
	d.Stop()
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	first := d.shardIndex("task-abc")
	for i := 0; i < 10; i++ {
		if d.shardIndex("task-abc") != first {
			t.Fatalf("shard index must be stable for the same task id")
		}
	}
}
