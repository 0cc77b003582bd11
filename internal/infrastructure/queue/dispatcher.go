package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/taskly/task-api/internal/api/metrics"
	"github.com/taskly/task-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes task activity events to a fixed set of workers using
// consistent hashing on the task id, guaranteeing per-task ordering in the
// activity feed.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	log     zerolog.Logger
	wg      sync.WaitGroup
	stop    sync.Once
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop closes their
// channels; they do not share the server's shutdown signal, so events queued
// by the last in-flight requests are still recorded.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the worker channels and blocks until every buffered event has
// been processed. Call it only after the HTTP server has stopped accepting
// requests: Enqueue on a stopped dispatcher panics.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() {
		for _, ch := range d.workers {
			close(ch)
		}
	})
	d.wg.Wait()
}

// Enqueue sends an event to the worker responsible for its task id. When the
// worker's buffer is full the event is dropped with a warning: the feed is
// best-effort and must never block a request.
func (d *Dispatcher) Enqueue(event ports.ActivityInput) {
	i := d.shardIndex(event.TaskID)
	select {
	case d.workers[i] <- event:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.ActivityErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("task_id", event.TaskID).Msg("activity queue full, event dropped")
	}
}

// shardIndex maps a task id deterministically to a worker index.
func (d *Dispatcher) shardIndex(taskID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.ActivityInput) {
	defer d.wg.Done()
	worker := strconv.Itoa(id)
	for event := range ch {
		metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		// A fresh context: the event must persist even while the server's
		// signal context is already cancelled during drain.
		if err := d.service.Process(context.Background(), event); err != nil {
			metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
			d.log.Error().Err(err).
				Str("task_id", event.TaskID).
				Int("worker_id", id).
				Msg("activity recording failed")
			continue
		}
		metrics.ActivityProcessedTotal.WithLabelValues(string(event.Kind)).Inc()
	}
}
