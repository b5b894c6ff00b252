package httpx

import (
	"net/http"

	"github.com/asutherland/treeherder-service/internal/service"
)

// PushHandlers serves the push aggregation endpoint.
type PushHandlers struct {
	Svc *service.PushService
}

// List returns one page of push groups for a project.
func (h *PushHandlers) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Svc.ListPushes(r.Context(), r.PathValue("project"), pageParam(r))
	if err != nil {
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, groups)
}
