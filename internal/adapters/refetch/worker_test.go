package refetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/etl/guid"
	"github.com/asutherland/treeherder-service/internal/etl/pushlog"
)

type fakeRepoStore struct {
	repos map[string]*model.Repository
}

func (s *fakeRepoStore) GetByName(_ context.Context, name string) (*model.Repository, error) {
	repo, ok := s.repos[name]
	if !ok {
		return nil, fmt.Errorf("no dataset for %s", name)
	}
	return repo, nil
}

func (s *fakeRepoStore) List(_ context.Context) ([]*model.Repository, error) {
	out := make([]*model.Repository, 0, len(s.repos))
	for _, repo := range s.repos {
		out = append(out, repo)
	}
	return out, nil
}

type recordingPushRepo struct {
	mu     sync.Mutex
	pushes []*model.Push
}

func (r *recordingPushRepo) UpsertPush(_ context.Context, push *model.Push) (*model.Push, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pushes = append(r.pushes, push)
	return push, nil
}

func (r *recordingPushRepo) GetByRevisionHash(
	_ context.Context,
	_ int64,
	hash string,
) (*model.Push, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, push := range r.pushes {
		if push.RevisionHash == hash {
			return push, nil
		}
	}
	return nil, fmt.Errorf("no push for %s", hash)
}

func (r *recordingPushRepo) stored() []*model.Push {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Push(nil), r.pushes...)
}

// closingQueue hands out its payloads once, then cancels the context so
// Worker.Run terminates.
type closingQueue struct {
	payloads [][]byte
	cancel   context.CancelFunc
}

func (q *closingQueue) Enqueue(_ context.Context, payload []byte) error {
	q.payloads = append(q.payloads, payload)
	return nil
}

func (q *closingQueue) Dequeue(_ context.Context, _ time.Duration) ([]byte, error) {
	if len(q.payloads) == 0 {
		q.cancel()
		return nil, nil
	}
	payload := q.payloads[0]
	q.payloads = q.payloads[1:]
	return payload, nil
}

func TestWorkerRecoversAndPlaceholdsPushes(t *testing.T) {
	// The pushlog now knows about "found1" but still not "lost1".
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mozilla-central/", r.URL.Path)
		lookup := map[string]model.PushRecord{
			"found1": {
				Date:         1367248461,
				User:         "dev@example.com",
				ActiveStatus: model.ActiveStatusActive,
				Changesets: []model.Changeset{
					{Node: "found1", Author: "dev@example.com", Desc: "fix the thing"},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(lookup))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task := Task{
		ID:      "task-1",
		Source:  "objectstore",
		Missing: map[string][]string{"mozilla-central": {"found1", "lost1"}},
	}
	payload, err := json.Marshal(task)
	require.NoError(t, err)

	queue := &closingQueue{payloads: [][]byte{payload}, cancel: cancel}
	pushRepo := &recordingPushRepo{}

	worker := NewWorker(WorkerOptions{
		Queue: queue,
		Client: pushlog.NewClient(pushlog.ClientOptions{
			BaseURL: server.URL,
			Timeout: time.Second,
		}),
		Repos: &fakeRepoStore{repos: map[string]*model.Repository{
			"mozilla-central": {ID: 7, Name: "mozilla-central"},
		}},
		Pushes:      pushRepo,
		Logger:      slog.Default(),
		PollTimeout: 10 * time.Millisecond,
	})

	err = worker.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	stored := pushRepo.stored()
	require.Len(t, stored, 2)

	byHash := make(map[string]*model.Push, len(stored))
	for _, push := range stored {
		byHash[push.RevisionHash] = push
	}

	recovered := byHash[guid.RevisionHash([]string{"found1"})]
	require.NotNil(t, recovered)
	assert.Equal(t, int64(7), recovered.RepositoryID)
	assert.Equal(t, model.ActiveStatusActive, recovered.ActiveStatus)
	assert.Equal(t, "dev@example.com", recovered.Author)
	require.Len(t, recovered.Revisions, 1)
	assert.Equal(t, "fix the thing", recovered.Revisions[0].Comments)

	placeholder := byHash[guid.RevisionHash([]string{"lost1"})]
	require.NotNil(t, placeholder)
	assert.Equal(t, model.ActiveStatusOnHold, placeholder.ActiveStatus)
	assert.Equal(t, "Unknown", placeholder.Author)
	require.Len(t, placeholder.Revisions, 1)
	assert.Contains(t, placeholder.Revisions[0].Comments, "Pushlog not found at")
}

func TestWorkerSkipsUnknownProject(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task := Task{
		ID:      "task-2",
		Source:  "objectstore",
		Missing: map[string][]string{"no-such-project": {"abc123"}},
	}
	payload, err := json.Marshal(task)
	require.NoError(t, err)

	queue := &closingQueue{payloads: [][]byte{payload}, cancel: cancel}
	pushRepo := &recordingPushRepo{}

	worker := NewWorker(WorkerOptions{
		Queue: queue,
		Client: pushlog.NewClient(pushlog.ClientOptions{
			BaseURL: "http://127.0.0.1:0",
			Timeout: time.Second,
		}),
		Repos:       &fakeRepoStore{repos: map[string]*model.Repository{}},
		Pushes:      pushRepo,
		Logger:      slog.Default(),
		PollTimeout: 10 * time.Millisecond,
	})

	err = worker.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pushRepo.stored())
}

func TestWorkerDiscardsMalformedTask(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	queue := &closingQueue{payloads: [][]byte{[]byte("not json")}, cancel: cancel}
	pushRepo := &recordingPushRepo{}

	worker := NewWorker(WorkerOptions{
		Queue: queue,
		Client: pushlog.NewClient(pushlog.ClientOptions{
			BaseURL: "http://127.0.0.1:0",
			Timeout: time.Second,
		}),
		Repos:       &fakeRepoStore{repos: map[string]*model.Repository{}},
		Pushes:      pushRepo,
		Logger:      slog.Default(),
		PollTimeout: 10 * time.Millisecond,
	})

	err := worker.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pushRepo.stored())
}
