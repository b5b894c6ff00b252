// Package service implements the use cases over the repository ports:
// job ingestion, push aggregation, and reference-data reads.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/data"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
	"github.com/asutherland/treeherder-service/internal/etl/guid"
	"github.com/asutherland/treeherder-service/internal/etl/jobdata"
	"github.com/asutherland/treeherder-service/internal/etl/pushlog"
)

// Fixed page sizes for the list endpoints.
const (
	ObjectstorePageSize = 10
	JobsPageSize        = 10
	PushesPageSize      = 1000
)

// revisionLookup is the slice of the pushlog client ingestion needs.
type revisionLookup interface {
	LookupRevisions(ctx context.Context, revisions map[string][]string) (model.PushLookup, error)
	LookupURL(project string, revisions []string) string
}

// IngestionServiceOptions groups dependencies for IngestionService.
type IngestionServiceOptions struct {
	Repos     core.RepositoryStore
	Jobs      core.JobRepository
	Pushes    core.PushRepository
	Lookup    revisionLookup
	Resolver  *pushlog.Resolver
	Scheduler core.RefetchScheduler
	Logger    *slog.Logger
}

// IngestionService orchestrates per-job normalization: parse payload,
// compute identity, resolve push, persist. It owns the batch semantics:
// one bad job never aborts the batch, and the missing-revision set is
// flushed exactly once at batch end.
type IngestionService struct {
	repos     core.RepositoryStore
	jobs      core.JobRepository
	pushes    core.PushRepository
	lookup    revisionLookup
	resolver  *pushlog.Resolver
	scheduler core.RefetchScheduler
	logger    *slog.Logger
}

// NewIngestionService constructs an IngestionService.
func NewIngestionService(opts IngestionServiceOptions) *IngestionService {
	return &IngestionService{
		repos:     opts.Repos,
		jobs:      opts.Jobs,
		pushes:    opts.Pushes,
		lookup:    opts.Lookup,
		resolver:  opts.Resolver,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
	}
}

// parsedJob is one payload after extraction, before push resolution.
type parsedJob struct {
	guid     string
	revision string
	name     string
	result   string
	who      string
	submitTS int64
	raw      json.RawMessage
}

// Ingest normalizes and persists a batch of raw job payloads for a
// project. Parse and resolution failures are per-job outcomes; only an
// unknown project or a transport-level lookup failure aborts the batch.
func (s *IngestionService) Ingest(
	ctx context.Context,
	project string,
	payloads []json.RawMessage,
) (*model.BatchSummary, error) {
	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return nil, err
	}

	summary := &model.BatchSummary{}
	parsed := make([]*parsedJob, len(payloads))
	revisions := make([]string, 0, len(payloads))

	for i, raw := range payloads {
		job, parseErr := parsePayload(raw)
		if parseErr != nil {
			summary.Record(model.IngestOutcome{
				State:   model.StateErrored,
				Message: parseErr.Error(),
			})
			continue
		}
		parsed[i] = job
		revisions = append(revisions, job.revision)
	}

	lookup := model.PushLookup{}
	if len(revisions) > 0 {
		// Transport failures propagate and abort the batch; an empty or
		// failed lookup response does not.
		lookup, err = s.lookup.LookupRevisions(ctx, map[string][]string{project: revisions})
		if err != nil {
			return nil, err
		}
	}

	missing := model.MissingPushSet{}
	for _, job := range parsed {
		if job == nil {
			continue
		}
		summary.Record(s.ingestOne(ctx, ingestOneParams{
			repo:    repo,
			job:     job,
			lookup:  lookup,
			missing: missing,
		}))
	}

	// Flushed exactly once per batch, fire-and-forget.
	if !missing.Empty() {
		s.scheduler.Schedule(ctx, project+" objectstore", missing)
	}

	return summary, nil
}

type ingestOneParams struct {
	repo    *model.Repository
	job     *parsedJob
	lookup  model.PushLookup
	missing model.MissingPushSet
}

func (s *IngestionService) ingestOne(ctx context.Context, params ingestOneParams) model.IngestOutcome {
	job := params.job

	record, err := s.resolver.Resolve(pushlog.ResolveParams{
		Project:  params.repo.Name,
		Lookup:   params.lookup,
		Revision: job.revision,
		Missing:  params.missing,
	})
	if err != nil {
		return model.IngestOutcome{
			JobGUID: job.guid,
			State:   model.StateSkipped,
			Message: err.Error(),
		}
	}

	push, err := s.storePush(ctx, params.repo.ID, record)
	if err != nil {
		return s.erroredOutcome(ctx, job.guid, "store push", err)
	}

	if err := s.jobs.StoreBlob(ctx, core.StoreBlobParams{
		RepositoryID: params.repo.ID,
		JobGUID:      job.guid,
		Blob:         job.raw,
	}); err != nil {
		return s.erroredOutcome(ctx, job.guid, "store payload", err)
	}

	// Non-active pushes keep their payload and push linkage, but no
	// normalized job row: the skip-notice is already logged by the resolver.
	if !record.Active() {
		return model.IngestOutcome{
			JobGUID: job.guid,
			State:   model.StateSkipped,
			Message: "push is " + record.ActiveStatus,
		}
	}

	if _, err := s.jobs.UpsertJob(ctx, &model.Job{
		JobGUID:         job.guid,
		RepositoryID:    params.repo.ID,
		RevisionHash:    push.RevisionHash,
		Revision:        job.revision,
		Name:            job.name,
		State:           model.StateStored,
		Result:          job.result,
		Who:             job.who,
		SubmitTimestamp: job.submitTS,
	}); err != nil {
		return s.erroredOutcome(ctx, job.guid, "store job", err)
	}

	return model.IngestOutcome{JobGUID: job.guid, State: model.StateStored}
}

func (s *IngestionService) erroredOutcome(
	ctx context.Context,
	jobGUID, op string,
	err error,
) model.IngestOutcome {
	s.logger.ErrorContext(ctx, "ingest "+op+" failed", "job_guid", jobGUID, "error", err)
	return model.IngestOutcome{
		JobGUID: jobGUID,
		State:   model.StateErrored,
		Message: op + ": " + err.Error(),
	}
}

func (s *IngestionService) storePush(
	ctx context.Context,
	repositoryID int64,
	record model.PushRecord,
) (*model.Push, error) {
	return s.pushes.UpsertPush(ctx, pushlog.PushFromRecord(record, repositoryID))
}

// parsePayload extracts the fields ingestion needs from one raw payload.
// The guid comes from job.job_guid when present, otherwise it is derived
// from job.request_id and job.request_time the way submitters derive it.
func parsePayload(raw json.RawMessage) (*parsedJob, error) {
	payload, err := jobdata.FromJSON(raw)
	if err != nil {
		return nil, err
	}
	job, err := payload.Map("job")
	if err != nil {
		return nil, err
	}

	jobGUID, err := deriveGUID(job)
	if err != nil {
		return nil, err
	}

	revision, err := job.String("revision")
	if err != nil {
		return nil, err
	}

	submitTS, err := optionalInt(job, "submit_timestamp")
	if err != nil {
		return nil, err
	}

	return &parsedJob{
		guid:     jobGUID,
		revision: revision,
		name:     optionalString(job, "name", ""),
		result:   optionalString(job, "result", model.ResultPending),
		who:      optionalString(job, "who", ""),
		submitTS: submitTS,
		raw:      raw,
	}, nil
}

// deriveGUID prefers an explicit job_guid; absent that it computes the
// identity digest from request_id and request_time, with the end_time
// suffix when a retry carries one. A payload with neither fails with the
// job_guid missing-path error.
func deriveGUID(job jobdata.JobData) (string, error) {
	jobGUID, guidErr := job.String("job_guid")
	if guidErr == nil && jobGUID != "" {
		return jobGUID, nil
	}
	if guidErr != nil && !apperrors.IsMissingField(guidErr) {
		return "", guidErr
	}

	requestID, idErr := job.String("request_id")
	requestTime, timeErr := job.String("request_time")
	if idErr != nil || timeErr != nil {
		if guidErr == nil {
			guidErr = apperrors.MissingField("missing data: ['job']['job_guid'].")
		}
		return "", guidErr
	}

	if endTime := optionalString(job, "end_timestamp", ""); endTime != "" {
		return guid.JobWithEndTime(requestID, requestTime, endTime), nil
	}
	return guid.Job(requestID, requestTime), nil
}

func optionalString(d jobdata.JobData, key, fallback string) string {
	v, err := d.String(key)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

func optionalInt(d jobdata.JobData, key string) (int64, error) {
	raw, err := d.Get(key)
	if err != nil {
		if apperrors.IsMissingField(err) {
			return 0, nil
		}
		return 0, err
	}
	num, ok := raw.(float64)
	if !ok {
		return 0, apperrors.Validationf("expected number at ['job']['%s'], got %T", key, raw)
	}
	return int64(num), nil
}

// GetBlob returns the raw stored payload for a guid.
func (s *IngestionService) GetBlob(
	ctx context.Context,
	project, jobGUID string,
) (*model.StoredPayload, error) {
	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return nil, err
	}
	return s.jobs.GetBlobByGUID(ctx, repo.ID, jobGUID)
}

// ListBlobs returns one page of raw stored payloads.
func (s *IngestionService) ListBlobs(
	ctx context.Context,
	project string,
	page int,
) ([]*model.StoredPayload, error) {
	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListBlobs(ctx, repo.ID, core.PageOpts{Page: page, Size: ObjectstorePageSize})
}

// GetJob returns a normalized job record.
func (s *IngestionService) GetJob(ctx context.Context, project string, jobID int64) (*model.Job, error) {
	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return nil, err
	}
	return s.jobs.GetJob(ctx, repo.ID, jobID)
}

// ListJobsParams groups parameters for ListJobs.
type ListJobsParams struct {
	Project string
	Page    int
	Filter  string // optional JMESPath expression evaluated per job
}

// ListJobs returns one page of normalized job records, optionally
// filtered by a JMESPath expression.
func (s *IngestionService) ListJobs(ctx context.Context, params ListJobsParams) ([]*model.Job, error) {
	repo, err := s.repos.GetByName(ctx, params.Project)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListJobs(ctx, repo.ID, core.PageOpts{Page: params.Page, Size: JobsPageSize})
	if err != nil {
		return nil, err
	}
	if params.Filter == "" {
		return jobs, nil
	}

	filter, err := CompileJobFilter(params.Filter)
	if err != nil {
		return nil, err
	}
	return filter.Apply(jobs)
}

// UpdateState persists a state transition for a job. The state must be a
// recognized ingestion state; beyond membership any transition is allowed.
// An unrecognized state fails regardless of whether the job exists.
func (s *IngestionService) UpdateState(
	ctx context.Context,
	project string,
	jobID int64,
	state string,
) error {
	var parsed model.State
	if err := parsed.UnmarshalText([]byte(state)); err != nil {
		return apperrors.InvalidStatef(
			"unrecognized state %q, must be one of: %s", state, model.StatesDescription())
	}

	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return err
	}

	err = s.jobs.SetState(ctx, core.SetStateParams{
		RepositoryID: repo.ID,
		JobID:        jobID,
		State:        parsed,
	})
	if errors.Is(err, data.ErrJobNotFound) {
		return apperrors.NotFoundf("job %d not found in project %q", jobID, project)
	}
	return err
}
