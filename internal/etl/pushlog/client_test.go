package pushlog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(ClientOptions{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	return client, srv
}

func TestFetchJSONSuccess(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"ok": true}`))
	})

	content, err := client.FetchJSON(context.Background(), srv.URL+"/anything")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(content))
}

func TestFetchJSONNon200ReturnsNil(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	content, err := client.FetchJSON(context.Background(), srv.URL+"/missing")
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestFetchJSONInvalidBodyReturnsNil(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	content, err := client.FetchJSON(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestFetchJSONTransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	client := NewClient(ClientOptions{BaseURL: url, Timeout: time.Second})
	_, err := client.FetchJSON(context.Background(), url+"/")
	require.Error(t, err)
}

func TestLookupRevisionsDeduplicatesAndQueries(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"rev1": {"date": 1, "user": "dev", "active_status": "active"}}`))
	})

	lookup, err := client.LookupRevisions(context.Background(), map[string][]string{
		"mozilla-central": {"rev2", "rev1", "rev1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "revision=rev1,rev2", gotQuery)
	require.Contains(t, lookup, "mozilla-central")
	assert.Equal(t, "dev", lookup["mozilla-central"]["rev1"].User)
}

func TestLookupRevisionsOmitsFailedProjects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	lookup, err := client.LookupRevisions(context.Background(), map[string][]string{
		"try": {"rev1"},
	})
	require.NoError(t, err)
	assert.NotContains(t, lookup, "try")
}

// fakeCache is an in-memory CacheRepository.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.sets++
	return nil
}

func TestLookupRevisionsUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"rev1": {"date": 1, "user": "dev"}}`))
	}))
	t.Cleanup(srv.Close)

	cache := newFakeCache()
	client := NewClient(ClientOptions{
		BaseURL:  srv.URL,
		Timeout:  time.Second,
		Cache:    cache,
		CacheTTL: time.Minute,
	})

	req := map[string][]string{"mozilla-central": {"rev1"}}

	_, err := client.LookupRevisions(context.Background(), req)
	require.NoError(t, err)
	lookup, err := client.LookupRevisions(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup should come from cache")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, "dev", lookup["mozilla-central"]["rev1"].User)
}
