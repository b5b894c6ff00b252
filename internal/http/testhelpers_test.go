package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/data"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/etl/pushlog"
	"github.com/asutherland/treeherder-service/internal/service"
)

type memRepoStore struct {
	repos map[string]*model.Repository
}

func (s *memRepoStore) GetByName(_ context.Context, name string) (*model.Repository, error) {
	repo, ok := s.repos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrDatasetNotFound, name)
	}
	return repo, nil
}

func (s *memRepoStore) List(_ context.Context) ([]*model.Repository, error) {
	out := make([]*model.Repository, 0, len(s.repos))
	for _, repo := range s.repos {
		out = append(out, repo)
	}
	return out, nil
}

type memJobRepo struct {
	blobs  map[string][]byte
	jobs   map[string]*model.Job
	rows   []model.PushResultRow
	nextID int64
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{
		blobs: make(map[string][]byte),
		jobs:  make(map[string]*model.Job),
	}
}

func (r *memJobRepo) StoreBlob(_ context.Context, params core.StoreBlobParams) error {
	r.blobs[params.JobGUID] = params.Blob
	return nil
}

func (r *memJobRepo) GetBlobByGUID(
	_ context.Context,
	_ int64,
	jobGUID string,
) (*model.StoredPayload, error) {
	blob, ok := r.blobs[jobGUID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrBlobNotFound, jobGUID)
	}
	return &model.StoredPayload{JobGUID: jobGUID, Blob: blob}, nil
}

func (r *memJobRepo) ListBlobs(
	_ context.Context,
	_ int64,
	_ core.PageOpts,
) ([]*model.StoredPayload, error) {
	guids := make([]string, 0, len(r.blobs))
	for jobGUID := range r.blobs {
		guids = append(guids, jobGUID)
	}
	sort.Strings(guids)

	out := make([]*model.StoredPayload, 0, len(guids))
	for _, jobGUID := range guids {
		out = append(out, &model.StoredPayload{JobGUID: jobGUID, Blob: r.blobs[jobGUID]})
	}
	return out, nil
}

func (r *memJobRepo) UpsertJob(_ context.Context, job *model.Job) (*model.Job, error) {
	stored := *job
	if existing, ok := r.jobs[job.JobGUID]; ok {
		stored.ID = existing.ID
	} else {
		r.nextID++
		stored.ID = r.nextID
	}
	r.jobs[job.JobGUID] = &stored
	return &stored, nil
}

func (r *memJobRepo) GetJob(_ context.Context, _ int64, jobID int64) (*model.Job, error) {
	for _, job := range r.jobs {
		if job.ID == jobID {
			return job, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", data.ErrJobNotFound, jobID)
}

func (r *memJobRepo) ListJobs(_ context.Context, _ int64, _ core.PageOpts) ([]*model.Job, error) {
	out := make([]*model.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memJobRepo) SetState(_ context.Context, params core.SetStateParams) error {
	for _, job := range r.jobs {
		if job.ID == params.JobID {
			job.State = params.State
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", data.ErrJobNotFound, params.JobID)
}

func (r *memJobRepo) ListPushResultRows(
	_ context.Context,
	_ int64,
	_ core.PageOpts,
) ([]model.PushResultRow, error) {
	return r.rows, nil
}

type memPushRepo struct {
	pushes map[string]*model.Push
}

func newMemPushRepo() *memPushRepo {
	return &memPushRepo{pushes: make(map[string]*model.Push)}
}

func (r *memPushRepo) UpsertPush(_ context.Context, push *model.Push) (*model.Push, error) {
	r.pushes[push.RevisionHash] = push
	return push, nil
}

func (r *memPushRepo) GetByRevisionHash(
	_ context.Context,
	_ int64,
	hash string,
) (*model.Push, error) {
	push, ok := r.pushes[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrPushNotFound, hash)
	}
	return push, nil
}

type memRefdataRepo struct {
	rows map[model.RefdataModel][]map[string]any
}

func (r *memRefdataRepo) List(_ context.Context, m model.RefdataModel) ([]map[string]any, error) {
	return r.rows[m], nil
}

type staticLookup struct {
	lookup model.PushLookup
}

func (l *staticLookup) LookupRevisions(
	_ context.Context,
	_ map[string][]string,
) (model.PushLookup, error) {
	return l.lookup, nil
}

func (l *staticLookup) LookupURL(project string, revisions []string) string {
	return "http://pushlog.test/" + project + "/?revision=" + revisions[0]
}

type noopScheduler struct {
	calls int
}

func (s *noopScheduler) Schedule(_ context.Context, _ string, _ model.MissingPushSet) {
	s.calls++
}

type apiFixture struct {
	handler   http.Handler
	jobs      *memJobRepo
	pushes    *memPushRepo
	scheduler *noopScheduler
}

func newAPIFixture(t *testing.T, lookup model.PushLookup) *apiFixture {
	t.Helper()

	f := &apiFixture{
		jobs:      newMemJobRepo(),
		pushes:    newMemPushRepo(),
		scheduler: &noopScheduler{},
	}

	repos := &memRepoStore{repos: map[string]*model.Repository{
		"mozilla-central": {ID: 1, Name: "mozilla-central"},
	}}

	ingestion := service.NewIngestionService(service.IngestionServiceOptions{
		Repos:     repos,
		Jobs:      f.jobs,
		Pushes:    f.pushes,
		Lookup:    &staticLookup{lookup: lookup},
		Resolver:  pushlog.NewResolver(slog.Default()),
		Scheduler: f.scheduler,
		Logger:    slog.Default(),
	})

	f.handler = NewRouter(RouterServices{
		Ingestion: ingestion,
		Pushes:    service.NewPushService(service.PushServiceOptions{Repos: repos, Jobs: f.jobs}),
		Refdata: service.NewRefdataService(&memRefdataRepo{
			rows: map[model.RefdataModel][]map[string]any{
				model.RefdataProduct: {{"id": float64(1), "name": "firefox"}},
			},
		}),
		Logger: slog.Default(),
	})
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func activeLookup(project string, revisions ...string) model.PushLookup {
	byRevision := make(map[string]model.PushRecord, len(revisions))
	for _, rev := range revisions {
		byRevision[rev] = model.PushRecord{
			Date:         1360454711,
			User:         "sheriff@example.com",
			ActiveStatus: model.ActiveStatusActive,
			Changesets: []model.Changeset{
				{Node: rev, Author: "dev@example.com", Desc: "change " + rev},
			},
		}
	}
	return model.PushLookup{project: byRevision}
}
