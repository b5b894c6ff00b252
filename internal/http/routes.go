package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asutherland/treeherder-service/internal/service"
)

// RouterServices holds the services the HTTP router exposes.
type RouterServices struct {
	Ingestion *service.IngestionService
	Pushes    *service.PushService
	Refdata   *service.RefdataService
	Logger    *slog.Logger
}

// NewRouter builds the API router: Recover → Logging → mux.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	objectstore := &ObjectstoreHandlers{Svc: services.Ingestion}
	jobs := &JobHandlers{Svc: services.Ingestion}
	pushes := &PushHandlers{Svc: services.Pushes}
	refdata := &RefdataHandlers{Svc: services.Refdata}

	mux.HandleFunc("POST /api/project/{project}/objectstore/{$}", objectstore.Create)
	mux.HandleFunc("GET /api/project/{project}/objectstore/{$}", objectstore.List)
	mux.HandleFunc("GET /api/project/{project}/objectstore/{guid}/{$}", objectstore.Get)

	mux.HandleFunc("GET /api/project/{project}/jobs/{$}", jobs.List)
	mux.HandleFunc("GET /api/project/{project}/jobs/{id}/{$}", jobs.Get)
	mux.HandleFunc("POST /api/project/{project}/jobs/{id}/update_state/{$}", jobs.UpdateState)

	mux.HandleFunc("GET /api/project/{project}/pushes/{$}", pushes.List)

	mux.HandleFunc("GET /api/refdata/{model}/{$}", refdata.List)

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

// pageParam reads the zero-based page query parameter; absent or invalid
// values fall back to page 0.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}
