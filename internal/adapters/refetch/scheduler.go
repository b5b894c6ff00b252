package refetch

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// Task is the queue payload describing which revisions a worker should
// re-fetch, grouped by project.
type Task struct {
	ID         string              `json:"id"`
	Source     string              `json:"source"`
	Missing    map[string][]string `json:"missing"`
	EnqueuedAt time.Time           `json:"enqueued_at"`
}

// Scheduler enqueues re-fetch tasks for revisions that ingestion could
// not resolve. It satisfies the RefetchScheduler port.
type Scheduler struct {
	queue  core.TaskQueue
	logger *slog.Logger
}

// NewScheduler creates a Scheduler over a task queue.
func NewScheduler(queue core.TaskQueue, logger *slog.Logger) *Scheduler {
	return &Scheduler{queue: queue, logger: logger}
}

// Schedule enqueues one re-fetch task for the batch's missing set.
// Scheduling is fire-and-forget: failures are logged, never returned, so
// a broken queue cannot fail the ingestion that produced the set.
func (s *Scheduler) Schedule(ctx context.Context, source string, missing model.MissingPushSet) {
	if missing.Empty() {
		return
	}

	task := Task{
		ID:         uuid.NewString(),
		Source:     source,
		Missing:    missing.ToLists(),
		EnqueuedAt: time.Now().UTC(),
	}

	s.logger.WarnContext(ctx, "revisions not found in pushlog, scheduling re-fetch",
		"source", source,
		"task_id", task.ID,
		"missing", task.Missing)

	payload, err := json.Marshal(task)
	if err != nil {
		s.logger.ErrorContext(ctx, "marshal refetch task", "task_id", task.ID, "error", err)
		return
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.ErrorContext(ctx, "enqueue refetch task", "task_id", task.ID, "error", err)
	}
}
