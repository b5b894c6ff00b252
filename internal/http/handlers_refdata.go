package httpx

import (
	"net/http"

	"github.com/asutherland/treeherder-service/internal/service"
)

// RefdataHandlers serves the read-only reference-data endpoint.
type RefdataHandlers struct {
	Svc *service.RefdataService
}

// List returns every row of a reference-data collection.
func (h *RefdataHandlers) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context(), r.PathValue("model"))
	if err != nil {
		RenderError(w, err)
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	WriteJSON(w, http.StatusOK, rows)
}
