// Package core defines the repository and scheduler ports between the
// service layer and the data/adapters layers. Service implementations
// depend on these interfaces, not concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// PageOpts groups pagination bounds to keep parameter counts ≤3.
// Page is zero-based; offset is Page*Size.
type PageOpts struct {
	Page int
	Size int
}

// Offset returns the row offset for the page.
func (p PageOpts) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Size
}

// RepositoryStore resolves project names to repository rows. Unknown
// projects surface as dataset-not-found at the API boundary.
type RepositoryStore interface {
	GetByName(ctx context.Context, name string) (*model.Repository, error)
	List(ctx context.Context) ([]*model.Repository, error)
}

// StoreBlobParams groups parameters for JobRepository.StoreBlob.
type StoreBlobParams struct {
	RepositoryID int64
	JobGUID      string
	Blob         []byte
}

// SetStateParams groups parameters for JobRepository.SetState.
type SetStateParams struct {
	RepositoryID int64
	JobID        int64
	State        model.State
}

// JobRepository defines the persisted store for raw payloads and
// normalized job rows, namespaced by repository.
type JobRepository interface {
	// Objectstore operations (raw payloads keyed by guid).
	StoreBlob(ctx context.Context, params StoreBlobParams) error
	GetBlobByGUID(ctx context.Context, repositoryID int64, guid string) (*model.StoredPayload, error)
	ListBlobs(ctx context.Context, repositoryID int64, pg PageOpts) ([]*model.StoredPayload, error)

	// Normalized job operations.
	UpsertJob(ctx context.Context, job *model.Job) (*model.Job, error)
	GetJob(ctx context.Context, repositoryID, jobID int64) (*model.Job, error)
	ListJobs(ctx context.Context, repositoryID int64, pg PageOpts) ([]*model.Job, error)
	SetState(ctx context.Context, params SetStateParams) error

	// Flat rows for push aggregation, sorted by revision hash.
	ListPushResultRows(ctx context.Context, repositoryID int64, pg PageOpts) ([]model.PushResultRow, error)
}

// PushRepository persists pushes and their revisions keyed by revision hash.
type PushRepository interface {
	UpsertPush(ctx context.Context, push *model.Push) (*model.Push, error)
	GetByRevisionHash(ctx context.Context, repositoryID int64, hash string) (*model.Push, error)
}

// RefdataRepository serves read-only reference-data collections. Rows are
// passed through untyped; there is no logic behind them.
type RefdataRepository interface {
	List(ctx context.Context, m model.RefdataModel) ([]map[string]any, error)
}

// RefetchScheduler schedules a deferred re-fetch of pushlogs for revisions
// that could not be resolved during ingestion. Scheduling is
// fire-and-forget: enqueue failures are logged, never surfaced to the
// ingesting caller, and no result is awaited.
type RefetchScheduler interface {
	Schedule(ctx context.Context, source string, missing model.MissingPushSet)
}

// TaskQueue is the asynchronous task facility backing the refetch
// scheduler and worker.
type TaskQueue interface {
	Enqueue(ctx context.Context, payload []byte) error
	// Dequeue blocks up to timeout for the next task; (nil, nil) on timeout.
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// CacheRepository is a byte-oriented TTL cache used for pushlog lookup
// results.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
