package refetch

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/etl/pushlog"
)

const maxConcurrentProjects = 4

// WorkerOptions configures the re-fetch worker.
type WorkerOptions struct {
	Queue       core.TaskQueue
	Client      *pushlog.Client
	Repos       core.RepositoryStore
	Pushes      core.PushRepository
	Logger      *slog.Logger
	PollTimeout time.Duration // queue poll bound; defaults to 5s
}

// Worker drains the re-fetch queue: for each task it re-runs the pushlog
// lookup and persists recovered pushes. Revisions the pushlog still knows
// nothing about are stored as on-hold placeholder pushes so they are not
// retried forever.
type Worker struct {
	queue       core.TaskQueue
	client      *pushlog.Client
	repos       core.RepositoryStore
	pushes      core.PushRepository
	logger      *slog.Logger
	pollTimeout time.Duration
}

// NewWorker creates a Worker.
func NewWorker(opts WorkerOptions) *Worker {
	pollTimeout := opts.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &Worker{
		queue:       opts.Queue,
		client:      opts.Client,
		repos:       opts.Repos,
		pushes:      opts.Pushes,
		logger:      opts.Logger,
		pollTimeout: pollTimeout,
	}
}

// Run polls the queue until the context is cancelled. Task failures are
// logged and do not stop the loop.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "starting refetch worker", "poll_timeout", w.pollTimeout)

	for ctx.Err() == nil {
		payload, err := w.queue.Dequeue(ctx, w.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			w.logger.ErrorContext(ctx, "dequeue refetch task", "error", err)
			// Back off briefly so a dead queue does not spin the loop.
			select {
			case <-ctx.Done():
			case <-time.After(w.pollTimeout):
			}
			continue
		}
		if payload == nil {
			continue
		}
		w.processPayload(ctx, payload)
	}
	return ctx.Err()
}

func (w *Worker) processPayload(ctx context.Context, payload []byte) {
	var task Task
	if err := json.Unmarshal(payload, &task); err != nil {
		w.logger.ErrorContext(ctx, "discarding malformed refetch task", "error", err)
		return
	}

	w.logger.InfoContext(ctx, "processing refetch task",
		"task_id", task.ID, "source", task.Source, "projects", len(task.Missing))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProjects)
	for project, revisions := range task.Missing {
		g.Go(func() error {
			w.refetchProject(gctx, project, revisions)
			return nil
		})
	}
	_ = g.Wait()
}

// refetchProject retries the lookup for one project's revisions. All
// failures are logged rather than returned; an unresolvable project must
// not block the rest of the task.
func (w *Worker) refetchProject(ctx context.Context, project string, revisions []string) {
	repo, err := w.repos.GetByName(ctx, project)
	if err != nil {
		w.logger.WarnContext(ctx, "refetch for unknown project",
			"project", project, "error", err)
		return
	}

	lookup, err := w.client.LookupRevisions(ctx, map[string][]string{project: revisions})
	if err != nil {
		w.logger.ErrorContext(ctx, "refetch lookup failed",
			"project", project, "error", err)
		return
	}

	byRevision := lookup[project]
	for _, revision := range revisions {
		record, found := byRevision[revision]
		if !found {
			record = pushlog.NotFoundOnHoldPush(w.client.LookupURL(project, []string{revision}), revision)
			w.logger.WarnContext(ctx, "revision still missing, storing on-hold push",
				"project", project, "revision", revision)
		}

		push := pushlog.PushFromRecord(record, repo.ID)
		if _, err := w.pushes.UpsertPush(ctx, push); err != nil {
			w.logger.ErrorContext(ctx, "store refetched push",
				"project", project, "revision", revision, "error", err)
			continue
		}
		if found {
			w.logger.InfoContext(ctx, "recovered missing push",
				"project", project, "revision", revision,
				"revision_hash", push.RevisionHash)
		}
	}
}
