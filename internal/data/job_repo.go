package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// JobRepo provides database operations for the objectstore and the
// normalized jobs table, namespaced by repository.
type JobRepo struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewJobRepo creates a JobRepo.
func NewJobRepo(db *sql.DB, logger *slog.Logger) *JobRepo {
	return &JobRepo{DB: db, logger: logger}
}

const jobColumns = `
  id,
  job_guid,
  repository_id,
  revision_hash,
  revision,
  name,
  state,
  result,
  who,
  submit_timestamp,
  created_at,
  updated_at
`

// StoreBlob writes a raw payload into the objectstore. Writes are
// idempotent upserts keyed by (repository, guid): resubmitting the same
// guid replaces the blob, last write wins.
func (r *JobRepo) StoreBlob(ctx context.Context, params core.StoreBlobParams) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO objectstore (repository_id, job_guid, json_blob, loaded_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (repository_id, job_guid) DO UPDATE
		SET json_blob = EXCLUDED.json_blob,
		    loaded_at = now()
	`, params.RepositoryID, params.JobGUID, params.Blob)
	if err != nil {
		return fmt.Errorf("store blob %s: %w", params.JobGUID, err)
	}
	return nil
}

// GetBlobByGUID returns the stored raw payload for a guid.
func (r *JobRepo) GetBlobByGUID(
	ctx context.Context,
	repositoryID int64,
	guid string,
) (*model.StoredPayload, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT job_guid, json_blob, loaded_at
		FROM objectstore
		WHERE repository_id = $1 AND job_guid = $2
	`, repositoryID, guid)

	var blob model.StoredPayload
	err := row.Scan(&blob.JobGUID, &blob.Blob, &blob.LoadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, guid)
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", guid, err)
	}
	return &blob, nil
}

// ListBlobs returns a page of stored raw payloads in insertion order.
func (r *JobRepo) ListBlobs(
	ctx context.Context,
	repositoryID int64,
	pg core.PageOpts,
) ([]*model.StoredPayload, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT job_guid, json_blob, loaded_at
		FROM objectstore
		WHERE repository_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, repositoryID, pg.Size, pg.Offset())
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	defer rows.Close()

	var blobs []*model.StoredPayload
	for rows.Next() {
		var blob model.StoredPayload
		if err := rows.Scan(&blob.JobGUID, &blob.Blob, &blob.LoadedAt); err != nil {
			return nil, fmt.Errorf("scan blob: %w", err)
		}
		blobs = append(blobs, &blob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blobs: %w", err)
	}
	return blobs, nil
}

// UpsertJob persists a normalized job row. A job identity is written at
// most once per ingestion attempt; resubmissions update the mutable
// columns in place.
func (r *JobRepo) UpsertJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO jobs (
			job_guid, repository_id, revision_hash, revision,
			name, state, result, who, submit_timestamp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (repository_id, job_guid) DO UPDATE
		SET revision_hash = EXCLUDED.revision_hash,
		    revision = EXCLUDED.revision,
		    name = EXCLUDED.name,
		    state = EXCLUDED.state,
		    result = EXCLUDED.result,
		    who = EXCLUDED.who,
		    submit_timestamp = EXCLUDED.submit_timestamp,
		    updated_at = now()
		RETURNING `+jobColumns,
		job.JobGUID, job.RepositoryID, job.RevisionHash, job.Revision,
		job.Name, job.State, job.Result, job.Who, job.SubmitTimestamp,
	)

	stored, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("upsert job %s: %w", job.JobGUID, err)
	}
	return stored, nil
}

// GetJob returns a normalized job row by id.
func (r *JobRepo) GetJob(ctx context.Context, repositoryID, jobID int64) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE repository_id = $1 AND id = $2
	`, repositoryID, jobID)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", jobID, err)
	}
	return job, nil
}

// ListJobs returns a page of normalized job rows in insertion order.
func (r *JobRepo) ListJobs(
	ctx context.Context,
	repositoryID int64,
	pg core.PageOpts,
) ([]*model.Job, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE repository_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, repositoryID, pg.Size, pg.Offset())
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

// SetState persists a state transition. Transitions are permissive: any
// recognized state may follow any other.
func (r *JobRepo) SetState(ctx context.Context, params core.SetStateParams) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE jobs
		SET state = $1, updated_at = now()
		WHERE repository_id = $2 AND id = $3
	`, params.State, params.RepositoryID, params.JobID)
	if err != nil {
		return fmt.Errorf("set state for job %d: %w", params.JobID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set state rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrJobNotFound, params.JobID)
	}

	if r.logger != nil {
		r.logger.DebugContext(ctx, "job state updated",
			"job_id", params.JobID, "state", params.State)
	}
	return nil
}

// ListPushResultRows returns flat job-with-push rows for the aggregation
// view, sorted by revision hash so the view's linear-scan grouping works.
func (r *JobRepo) ListPushResultRows(
	ctx context.Context,
	repositoryID int64,
	pg core.PageOpts,
) ([]model.PushResultRow, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT
			j.id, j.job_guid, j.name, j.result, j.submit_timestamp,
			p.revision_hash, p.author, p.push_timestamp,
			j.revision,
			COALESCE(r.author, 'Unknown'),
			COALESCE(r.comments, ''),
			j.repository_id
		FROM jobs j
		JOIN pushes p
			ON p.repository_id = j.repository_id
			AND p.revision_hash = j.revision_hash
		LEFT JOIN revisions r
			ON r.push_id = p.id
			AND r.revision = j.revision
		WHERE j.repository_id = $1
		ORDER BY p.revision_hash, j.revision, j.id
		LIMIT $2 OFFSET $3
	`, repositoryID, pg.Size, pg.Offset())
	if err != nil {
		return nil, fmt.Errorf("list push result rows: %w", err)
	}
	defer rows.Close()

	var out []model.PushResultRow
	for rows.Next() {
		var row model.PushResultRow
		if err := rows.Scan(
			&row.JobID, &row.JobGUID, &row.Name, &row.State, &row.SubmitTimestamp,
			&row.RevisionHash, &row.Who, &row.PushTimestamp,
			&row.Revision, &row.Author, &row.Comments, &row.RepositoryID,
		); err != nil {
			return nil, fmt.Errorf("scan push result row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate push result rows: %w", err)
	}
	return out, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanJob.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.Job, error) {
	var job model.Job
	err := row.Scan(
		&job.ID, &job.JobGUID, &job.RepositoryID, &job.RevisionHash,
		&job.Revision, &job.Name, &job.State, &job.Result, &job.Who,
		&job.SubmitTimestamp, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
